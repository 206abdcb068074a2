// Package tui is the interactive front end: a Bubble Tea list whose every
// change is an action dispatched to a session.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/session"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) Title() string {
	box := boxUnchecked
	if i.Complete {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.Text)
}
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// Single-line delegate.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := ui.MutedStyle.Render(boxUnchecked)
	text := ui.Printable(it.Text)
	if it.Complete {
		box = ui.SuccessStyle.Render(boxChecked)
		text = ui.DoneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

var (
	addKey    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleKey = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteKey = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
)

// Model is the Bubble Tea model for one session.
type Model struct {
	sess *session.Session
	list list.Model

	adding bool
	ti     textinput.Model
	err    string

	width, height int
}

// New builds the model around sess, showing whatever sess already holds.
func New(sess *session.Session) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addKey, toggleKey, deleteKey} }
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item text..."
	ti.CharLimit = 200

	m := Model{sess: sess, list: l, ti: ti, width: 80, height: 24}
	m.list.SetSize(m.width-4, m.height-4)
	m.sync(sess.Items())
	return m
}

// Run starts the program on in/out and returns once the user quits.
func Run(sess *session.Session, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(sess), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// sync rebuilds list rows and the header from items.
func (m *Model) sync(items model.List) {
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, listItem{it})
	}
	m.list.SetItems(rows)
	if m.list.FilterState() == list.FilterApplied {
		// SetItems refilters asynchronously; redo it now so indexes stay valid.
		m.list.SetFilterText(m.list.FilterValue())
	}

	dn, pn := items.Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Todos"),
		ui.SuccessStyle.Render("✔"), dn,
		ui.PendingStyle.Render("•"), pn,
		ui.AccentStyle.Render("Total"), len(items),
	)
}

func (m *Model) dispatch(a action.Action) {
	items, err := m.sess.Dispatch(a)
	if err != nil {
		m.err = err.Error()
		return
	}
	m.err = ""
	m.sync(items)
}

func (m Model) selectedID() (string, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return "", false
	}
	return it.ID, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.list.SetSize(m.width-4, m.height-4)
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch km.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if id, ok := m.selectedID(); ok {
				idx := m.list.Index()
				m.dispatch(action.ToggleItem{ID: id})
				m.list.Select(idx)
			}
			return m, nil
		case "d":
			if id, ok := m.selectedID(); ok {
				idx := m.list.Index()
				m.dispatch(action.DeleteItem{ID: id})
				if n := len(m.list.VisibleItems()); idx >= n {
					idx = n - 1
				}
				if idx >= 0 {
					m.list.Select(idx)
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.err = ""
			m.ti.SetValue("")
			m.ti.Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			text := strings.TrimSpace(m.ti.Value())
			if text == "" {
				m.err = "Text cannot be empty"
				return m, nil
			}
			m.dispatch(action.AddItem{Text: text})
			m.list.Select(len(m.list.Items()) - 1)
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		case "esc":
			m.adding = false
			m.err = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 8
	}
	m.list.SetSize(m.width-4, listHeight)

	content := m.list.View()
	if m.adding {
		title := "Add new item"
		if m.err != "" {
			title += " - " + ui.ErrorStyle.Render(m.err)
		}
		content += "\n" + ui.Frame(title+"\n"+m.ti.View())
	} else if m.err != "" {
		content += "\n" + ui.ErrorStyle.Render(m.err)
	}
	return ui.Frame(content)
}

// Items exposes the rows currently shown, in order.
func (m Model) Items() model.List {
	out := make(model.List, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Item)
		}
	}
	return out
}
