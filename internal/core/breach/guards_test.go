package breach

import "testing"

func TestCanRecordBreach(t *testing.T) {
	tests := []struct {
		name        string
		ctx         RecordBreachContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can record when all fields present",
			ctx: RecordBreachContext{
				Location:   "New York",
				BreachType: "Phishing",
				Impact:     "Low",
			},
			wantAllowed: true,
		},
		{
			name: "cannot record without location",
			ctx: RecordBreachContext{
				BreachType: "Phishing",
				Impact:     "Low",
			},
			wantAllowed: false,
			wantReason:  "location is required",
		},
		{
			name: "cannot record without breach type",
			ctx: RecordBreachContext{
				Location: "New York",
				Impact:   "Low",
			},
			wantAllowed: false,
			wantReason:  "breach type is required",
		},
		{
			name: "cannot record without impact",
			ctx: RecordBreachContext{
				Location:   "New York",
				BreachType: "Phishing",
			},
			wantAllowed: false,
			wantReason:  "impact is required",
		},
		{
			name:        "location reported first when everything is empty",
			ctx:         RecordBreachContext{},
			wantAllowed: false,
			wantReason:  "location is required",
		},
		{
			name: "whitespace-only fields count as present",
			ctx: RecordBreachContext{
				Location:   "   ",
				BreachType: "\t",
				Impact:     " ",
			},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanRecordBreach(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestGuardResult_Error(t *testing.T) {
	t.Run("allowed result returns nil error", func(t *testing.T) {
		result := GuardResult{Allowed: true}
		if err := result.Error(); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})

	t.Run("not allowed result returns error with reason", func(t *testing.T) {
		result := GuardResult{Allowed: false, Reason: "impact is required"}
		err := result.Error()
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "impact is required" {
			t.Errorf("expected error message %q, got %q", "impact is required", err.Error())
		}
	})
}
