package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

// selectGame moves the menu cursor to the fake game and picks it.
func selectGame(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == fakeGameID {
			m.menu.cursor = i
		}
	}
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestSessionMenuGameMenu(t *testing.T) {
	store := testStore(t)
	m := NewSessionModel(Env{Store: store, Player: "bob"}, testRuntime(), "session-1")

	m = selectGame(t, m)
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("selecting a game should start it")
	}

	for i := 0; i < 3; i++ {
		m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = sendSession(t, m, TickMsg{})
	}
	m, _ = sendSession(t, m, runeKey("b"))
	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatal("back after game over should return to the menu")
	}

	// Fresh menu shows the new best score
	if !strings.Contains(m.View(), "best 3") {
		t.Errorf("menu should show best score:\n%s", m.View())
	}

	best, err := store.PlayerBest(fakeGameID, "bob")
	if err != nil || best != 3 {
		t.Errorf("PlayerBest = %d, %v", best, err)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(Env{Store: testStore(t)}, testRuntime(), "session-2")

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if isQuit(cmd) {
		t.Error("opening the scoreboard must not end the session")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Error("esc should return to the menu")
	}

	m, cmd = sendSession(t, m, runeKey("q"))
	if !isQuit(cmd) || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
