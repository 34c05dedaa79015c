package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/example/breachtracker/internal/ports/primary"
)

// screenState is the screen currently shown.
type screenState int

const (
	loginScreen  screenState = iota // Cosmetic login gate
	mainScreen                      // Search, entry form and table
	detailScreen                    // Read-only view of one breach
)

// Form fields on the main screen
const (
	fieldLocation = iota
	fieldBreachType
	fieldImpact
	numFormFields
)

// focusTarget is the main screen component receiving keys.
type focusTarget int

const (
	focusSearch focusTarget = iota
	focusLocation
	focusBreachType
	focusImpact
	focusTable
	numFocusTargets
)

const (
	defaultWidth       = 80
	defaultTableHeight = 12
	minColumnWidth     = 12
	inputCharLimit     = 256

	keyEnter     = "enter"
	keyEsc       = "esc"
	keyTab       = "tab"
	keyShiftTab  = "shift+tab"
	keyQuit      = "q"
	keyBack      = "b"
	keyTheme     = "ctrl+t"
	keyInterrupt = "ctrl+c"
)

// Messages produced by commands.
type (
	breachesLoadedMsg struct {
		breaches []*primary.Breach
		query    string
		searched bool
	}

	breachRecordedMsg struct {
		resp *primary.RecordBreachResponse
	}

	errMsg struct {
		err error
	}
)

// Options configures the TUI.
type Options struct {
	Dark   bool
	Logger *slog.Logger
}

// model is the state of the TUI program.
type model struct {
	ctx     context.Context
	service primary.BreachService
	logger  *slog.Logger

	state  screenState
	dark   bool
	theme  theme
	width  int
	height int

	// login screen
	usernameInput textinput.Model
	passwordInput textinput.Model
	operator      string

	// main screen
	searchInput textinput.Model
	formInputs  []textinput.Model
	focus       focusTarget
	table       table.Model
	breaches    []*primary.Breach // rows currently displayed, in table order
	status      string
	err         error

	// detail screen
	selected *primary.Breach
}

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = inputCharLimit
	ti.Width = 20
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// newModel creates the initial model showing the login screen.
func newModel(ctx context.Context, service primary.BreachService, opts Options) *model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	username := newTextInput("Username")
	username.Focus()
	password := newTextInput("Password")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	form := make([]textinput.Model, numFormFields)
	form[fieldLocation] = newTextInput("Location")
	form[fieldBreachType] = newTextInput("Breach Type")
	form[fieldImpact] = newTextInput("Impact")

	m := &model{
		ctx:           ctx,
		service:       service,
		logger:        logger,
		state:         loginScreen,
		dark:          opts.Dark,
		width:         defaultWidth,
		usernameInput: username,
		passwordInput: password,
		searchInput:   newTextInput("Search..."),
		formInputs:    form,
		table:         newBreachTable(),
	}
	m.applyTheme()
	return m
}

func newBreachTable() table.Model {
	return table.New(
		table.WithColumns(breachColumns(defaultWidth)),
		table.WithHeight(defaultTableHeight),
	)
}

// breachColumns splits the available width evenly over the three columns.
func breachColumns(width int) []table.Column {
	colWidth := (width - 6) / 3
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}
	return []table.Column{
		{Title: "Location", Width: colWidth},
		{Title: "Breach Type", Width: colWidth},
		{Title: "Impact", Width: colWidth},
	}
}

func breachRows(breaches []*primary.Breach) []table.Row {
	rows := make([]table.Row, len(breaches))
	for i, b := range breaches {
		rows[i] = table.Row{b.Location, b.BreachType, b.Impact}
	}
	return rows
}

func (m *model) formRequest() primary.RecordBreachRequest {
	return primary.RecordBreachRequest{
		Location:   m.formInputs[fieldLocation].Value(),
		BreachType: m.formInputs[fieldBreachType].Value(),
		Impact:     m.formInputs[fieldImpact].Value(),
	}
}

func (m *model) clearForm() {
	for i := range m.formInputs {
		m.formInputs[i].Reset()
	}
}

func (m *model) toggleTheme() {
	m.dark = !m.dark
	m.applyTheme()
}

func (m *model) applyTheme() {
	if m.dark {
		m.theme = darkTheme()
	} else {
		m.theme = lightTheme()
	}
	m.table.SetStyles(m.theme.table)
}
