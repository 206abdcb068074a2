package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/action"
	"github.com/Makepad-fr/tada/internal/reducer"
	"github.com/Makepad-fr/tada/internal/session"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(s string) []tea.Msg {
	var out []tea.Msg
	for _, r := range s {
		out = append(out, runes(string(r)))
	}
	return out
}

func newSession() *session.Session {
	return session.New(session.WithReducer(reducer.New(reducer.Counter(1))))
}

func TestModel_ShowsExistingItems(t *testing.T) {
	s := newSession()
	_, err := s.Dispatch(action.AddItem{Text: "buy milk"})
	require.NoError(t, err)

	m := New(s)
	require.Len(t, m.Items(), 1)
	require.Contains(t, m.View(), "buy milk")
}

func TestModel_AddAppendsThroughSession(t *testing.T) {
	s := newSession()
	m := New(s)

	msgs := append([]tea.Msg{runes("a")}, typeText("walk dog")...)
	msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, msgs...)

	require.False(t, m.adding)
	require.Equal(t, 1, s.Len())
	require.Equal(t, "walk dog", s.Items()[0].Text)
	require.Equal(t, s.Items(), m.Items())
}

func TestModel_AddRejectsBlank(t *testing.T) {
	s := newSession()
	m := send(t, New(s), runes("a"), runes(" "), tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, m.adding)
	require.Equal(t, "Text cannot be empty", m.err)
	require.Equal(t, 0, s.Len())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.adding)
}

func TestModel_ToggleAndDeleteSelected(t *testing.T) {
	s := newSession()
	for _, text := range []string{"buy milk", "walk dog"} {
		_, err := s.Dispatch(action.AddItem{Text: text})
		require.NoError(t, err)
	}
	m := New(s)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, s.Items()[0].Complete)
	require.False(t, s.Items()[1].Complete)
	require.True(t, m.Items()[0].Complete)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("d"))
	require.Equal(t, 1, s.Len())
	require.Equal(t, "buy milk", s.Items()[0].Text)
	require.Len(t, m.Items(), 1)
	require.Equal(t, 0, m.list.Index())
}

func TestModel_DeleteWhileFilteredClampsToVisible(t *testing.T) {
	s := newSession()
	for _, text := range []string{"buy milk", "walk dog", "buy bread"} {
		_, err := s.Dispatch(action.AddItem{Text: text})
		require.NoError(t, err)
	}
	m := New(s)
	m.list.SetFilterText("buy")
	require.Len(t, m.list.VisibleItems(), 2)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("d"))
	require.Equal(t, 2, s.Len())
	require.Equal(t, "walk dog", s.Items()[1].Text)

	require.Len(t, m.list.VisibleItems(), 1)
	require.Equal(t, 0, m.list.Index())
	id, ok := m.selectedID()
	require.True(t, ok)
	require.Equal(t, s.Items()[0].ID, id)
}

func TestModel_KeysOnEmptyListAreNoops(t *testing.T) {
	s := newSession()
	m := send(t, New(s), tea.KeyMsg{Type: tea.KeySpace}, runes("d"))
	require.Equal(t, 0, s.Len())
	require.Empty(t, m.err)
}

func TestModel_Quit(t *testing.T) {
	_, cmd := New(newSession()).Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := send(t, New(newSession()), tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, 100, m.width)
	require.Equal(t, 40, m.height)
}
