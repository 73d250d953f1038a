package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/restforge/internal/builder"
	"github.com/unkn0wn-root/restforge/internal/config"
	"github.com/unkn0wn-root/restforge/internal/entry"
	"github.com/unkn0wn-root/restforge/internal/httpclient"
	"github.com/unkn0wn-root/restforge/internal/outcome"
	"github.com/unkn0wn-root/restforge/internal/theme"
)

var _ tea.Model = (*Model)(nil)

type paneFocus int

const (
	focusForm paneFocus = iota
	focusResponse
)

type requestTab int

const (
	tabURL requestTab = iota
	tabQuery
	tabHeaders
	tabBody
)

func (t requestTab) title() string {
	switch t {
	case tabURL:
		return "URL"
	case tabQuery:
		return "Query"
	case tabHeaders:
		return "Headers"
	case tabBody:
		return "Body"
	}
	return "?"
}

type responseTab int

const (
	responseTabPretty responseTab = iota
	responseTabRaw
	responseTabHeaders
)

func (t responseTab) title() string {
	switch t {
	case responseTabPretty:
		return "Pretty"
	case responseTabRaw:
		return "Raw"
	case responseTabHeaders:
		return "Headers"
	}
	return "?"
}

const (
	noResponseMessage = "Press ctrl+r to send the request."
	appTitle          = "restforge"
)

type Config struct {
	Settings       config.Settings
	SettingsHandle config.SettingsHandle
	Client         *httpclient.Client
	Theme          *theme.Theme
	HTTPOptions    httpclient.Options
	Initial        *builder.State
	ExportDir      string
	Version        string
	IDSource       entry.IDSource
}

type Model struct {
	cfg         Config
	theme       theme.Theme
	client      *httpclient.Client
	httpOptions httpclient.Options
	ids         entry.IDSource
	exportDir   string

	state  builder.State
	result outcome.Result
	latest *httpclient.Response

	focus       paneFocus
	activeTab   requestTab
	responseTab responseTab

	urlInput   textinput.Model
	keyInput   textinput.Model
	valueInput textinput.Model
	bodyInput  textarea.Model

	rowCursor  int
	editingID  string
	editing    bool
	editTarget entry.Field

	responseView viewport.Model
	spin         spinner.Model

	sending    bool
	sendCancel context.CancelFunc

	statusText  string
	statusLevel statusLevel

	width  int
	height int
	ready  bool
}

func New(cfg Config) Model {
	th := theme.DefaultTheme()
	if cfg.Theme != nil {
		th = *cfg.Theme
	}

	client := cfg.Client
	if client == nil {
		client = httpclient.NewClient()
	}

	state := builder.NewState(cfg.IDSource)
	if cfg.Initial != nil {
		state = cfg.Initial.Clone()
	}

	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = cfg.Settings.ExportDir
	}

	urlInput := textinput.New()
	urlInput.Placeholder = "https://example.com/resource"
	urlInput.Prompt = ""
	urlInput.SetValue(state.BaseURL)
	urlInput.Focus()

	keyInput := textinput.New()
	keyInput.Placeholder = "name"
	keyInput.Prompt = ""

	valueInput := textinput.New()
	valueInput.Placeholder = "value"
	valueInput.Prompt = ""

	bodyInput := textarea.New()
	bodyInput.Placeholder = "{}"
	bodyInput.SetValue(state.Body)
	bodyInput.CharLimit = 0

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))),
	)

	return Model{
		cfg:          cfg,
		theme:        th,
		client:       client,
		httpOptions:  cfg.HTTPOptions,
		ids:          cfg.IDSource,
		exportDir:    exportDir,
		state:        state,
		result:       outcome.Idle(),
		urlInput:     urlInput,
		keyInput:     keyInput,
		valueInput:   valueInput,
		bodyInput:    bodyInput,
		responseView: viewport.New(0, 0),
		spin:         spin,
	}
}

func (m *Model) setStatusMessage(msg statusMsg) {
	m.statusText = msg.text
	m.statusLevel = msg.level
}

// activeList returns the entry list the current tab edits, nil on tabs
// without key/value rows.
func (m *Model) activeList() *entry.List {
	switch m.activeTab {
	case tabQuery:
		return m.state.Query
	case tabHeaders:
		return m.state.Headers
	}
	return nil
}

// syncStateFromInputs folds the live widget values back into the builder
// state so assembly and export always see what is on screen.
func (m *Model) syncStateFromInputs() {
	m.state.BaseURL = m.urlInput.Value()
	m.state.Body = m.bodyInput.Value()
}
