package wire

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/example/breachtracker/internal/config"
	"github.com/example/breachtracker/internal/ports/primary"
	"github.com/example/breachtracker/internal/ports/secondary"
)

func openTestApp(t *testing.T) (*App, *config.Config) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.DBPath = filepath.Join(dir, "data_breaches.db")
	cfg.LogFile = filepath.Join(dir, "breach.log")

	a, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a, cfg
}

func record(t *testing.T, a *App, location, breachType, impact string) int64 {
	t.Helper()

	resp, err := a.Breaches.RecordBreach(context.Background(), primary.RecordBreachRequest{
		Location: location, BreachType: breachType, Impact: impact,
	})
	if err != nil {
		t.Fatalf("RecordBreach failed: %v", err)
	}
	return resp.BreachID
}

func ids(breaches []*primary.Breach) []int64 {
	out := make([]int64, 0, len(breaches))
	for _, b := range breaches {
		out = append(out, b.ID)
	}
	return out
}

func TestApp_Scenario(t *testing.T) {
	a, _ := openTestApp(t)
	ctx := context.Background()

	if id := record(t, a, "New York", "Phishing", "Low"); id != 1 {
		t.Fatalf("expected first ID 1, got %d", id)
	}
	if id := record(t, a, "Boston", "Ransomware", "High"); id != 2 {
		t.Fatalf("expected second ID 2, got %d", id)
	}

	all, err := a.Breaches.ListBreaches(ctx)
	if err != nil {
		t.Fatalf("ListBreaches failed: %v", err)
	}
	want := []*primary.Breach{
		{ID: 1, Location: "New York", BreachType: "Phishing", Impact: "Low"},
		{ID: 2, Location: "Boston", BreachType: "Ransomware", Impact: "High"},
	}
	if !reflect.DeepEqual(all, want) {
		t.Errorf("ListBreaches = %+v, want %+v", all, want)
	}

	searches := []struct {
		query string
		want  []int64
	}{
		{"bos", []int64{2}},
		{"high", []int64{2}},
		{"zzz", []int64{}},
		{"", []int64{1, 2}},
	}
	for _, s := range searches {
		found, err := a.Breaches.SearchBreaches(ctx, s.query)
		if err != nil {
			t.Fatalf("SearchBreaches(%q) failed: %v", s.query, err)
		}
		if got := ids(found); !reflect.DeepEqual(got, s.want) {
			t.Errorf("SearchBreaches(%q) = %v, want %v", s.query, got, s.want)
		}
	}
}

func TestApp_EmptySubmissionLeavesStoreUnchanged(t *testing.T) {
	a, _ := openTestApp(t)
	ctx := context.Background()
	record(t, a, "Boston", "Ransomware", "High")

	resp, err := a.Breaches.RecordBreach(ctx, primary.RecordBreachRequest{Location: "Austin", BreachType: "Malware"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Recorded {
		t.Error("expected submission to be ignored")
	}

	all, _ := a.Breaches.ListBreaches(ctx)
	if len(all) != 1 {
		t.Errorf("expected 1 breach, got %d", len(all))
	}
}

func TestApp_CloseIsIdempotentAndEndsUse(t *testing.T) {
	a, _ := openTestApp(t)

	if err := a.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	_, err := a.Breaches.ListBreaches(context.Background())
	if !errors.Is(err, secondary.ErrAlreadyClosed) {
		t.Errorf("expected ErrAlreadyClosed after Close, got %v", err)
	}
}

func TestApp_ReopenKeepsRecords(t *testing.T) {
	a, cfg := openTestApp(t)
	record(t, a, "New York", "Phishing", "Low")
	a.Close()

	reopened, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if id := record(t, reopened, "Boston", "Ransomware", "High"); id != 2 {
		t.Errorf("expected ID 2 after reopen, got %d", id)
	}
}

func TestOpen_StorageUnavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cfg := config.Default()
	cfg.DBPath = filepath.Join(blocker, "data_breaches.db")
	cfg.LogFile = ""

	_, err := Open(context.Background(), cfg)
	if !errors.Is(err, secondary.ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestApp_BreachAdapterWithOutput(t *testing.T) {
	a, _ := openTestApp(t)
	var buf bytes.Buffer

	if _, err := a.BreachAdapterWithOutput(&buf).Record(context.Background(), "Boston", "Ransomware", "High"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Recorded breach 1")) {
		t.Errorf("expected confirmation, got %q", buf.String())
	}
}
