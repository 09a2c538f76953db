// Package tui is a terminal front end for a calculator. It turns key presses
// into calculator keys and draws the expression and result lines.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/keycalc"
)

// KeyMap binds keyboard keys to calculator keys that have no single
// character of their own. Digits, the point, + - * / ^ ( ) and π are typed
// directly.
type KeyMap struct {
	Sin, Cos, Tan, Sqrt, Log, Ln, Exp, Recip, Square key.Binding

	Pi, Negate, Clear, Backspace, Equals key.Binding

	Help, Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Sin:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sin")),
		Cos:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cos")),
		Tan:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tan")),
		Sqrt:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "√")),
		Log:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
		Ln:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "ln")),
		Exp:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "exp")),
		Recip:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "1/x")),
		Square: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "x²")),

		Pi:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "π")),
		Negate:    key.NewBinding(key.WithKeys("~", "m"), key.WithHelp("~", "+/-")),
		Clear:     key.NewBinding(key.WithKeys("esc", "delete"), key.WithHelp("esc", "clear")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "back")),
		Equals:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "=")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Backspace, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sin, k.Cos, k.Tan},
		{k.Sqrt, k.Log, k.Ln},
		{k.Exp, k.Recip, k.Square},
		{k.Pi, k.Negate, k.Clear},
		{k.Backspace, k.Equals, k.Quit},
	}
}

// token returns the calculator key for a keyboard key.
func (k KeyMap) token(msg tea.KeyMsg) (keycalc.Token, bool) {
	bound := []struct {
		b   key.Binding
		tok keycalc.Token
	}{
		{k.Sin, keycalc.FuncKey(keycalc.Sin)},
		{k.Cos, keycalc.FuncKey(keycalc.Cos)},
		{k.Tan, keycalc.FuncKey(keycalc.Tan)},
		{k.Sqrt, keycalc.FuncKey(keycalc.Sqrt)},
		{k.Log, keycalc.FuncKey(keycalc.Log)},
		{k.Ln, keycalc.FuncKey(keycalc.Ln)},
		{k.Exp, keycalc.FuncKey(keycalc.Exp)},
		{k.Recip, keycalc.FuncKey(keycalc.Recip)},
		{k.Square, keycalc.FuncKey(keycalc.Square)},
		{k.Pi, keycalc.PiKey},
		{k.Negate, keycalc.NegateKey},
		{k.Clear, keycalc.ClearKey},
		{k.Backspace, keycalc.BackspaceKey},
		{k.Equals, keycalc.EqualsKey},
	}
	for _, b := range bound {
		if key.Matches(msg, b.b) {
			return b.tok, true
		}
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return keycalc.Token{}, false
	}
	tok, err := keycalc.ParseToken(string(msg.Runes))
	if err != nil {
		return keycalc.Token{}, false
	}
	return tok, true
}

// Styles are the lipgloss styles of the display.
type Styles struct {
	Expression lipgloss.Style
	Result     lipgloss.Style
	Alert      lipgloss.Style
	Frame      lipgloss.Style
}

// DefaultStyles returns dark text on a gray display in a slate frame.
func DefaultStyles() Styles {
	display := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#AAAAAA")).
		Align(lipgloss.Right).
		Padding(0, 1)
	return Styles{
		Expression: display,
		Result:     display.Bold(true),
		Alert:      lipgloss.NewStyle().Foreground(lipgloss.Color("#30E3CA")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#40514E")).
			Padding(0, 1),
	}
}

// Model is a bubbletea model of a calculator.
type Model struct {
	calc   *keycalc.Calculator
	view   keycalc.View
	keys   KeyMap
	help   help.Model
	styles Styles
	log    *slog.Logger
	width  int
}

// New creates a model driving calc.
func New(calc *keycalc.Calculator, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	return Model{
		calc:   calc,
		view:   calc.View(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
		log:    log,
		width:  32,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-6, 8)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		tok, ok := m.keys.token(msg)
		if !ok {
			m.log.Debug("unbound key", slog.String("key", msg.String()))
			return m, nil
		}
		m.view = m.calc.Apply(tok)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Result.Width(m.width).Render(m.view.Result))
	b.WriteByte('\n')
	b.WriteString(m.styles.Expression.Width(m.width).Render(m.view.Expression))
	b.WriteByte('\n')
	if m.view.Alert {
		b.WriteString(m.styles.Alert.Render("•"))
	}
	return m.styles.Frame.Render(b.String()) + "\n" + m.help.View(m.keys) + "\n"
}

// Lines returns the lines the model currently shows.
func (m Model) Lines() keycalc.View {
	return m.view
}

// Run runs an interactive program on calc until the user quits.
func Run(calc *keycalc.Calculator, log *slog.Logger, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(calc, log), opts...).Run()
	return err
}
