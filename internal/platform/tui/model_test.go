package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/registry"
	"github.com/vovakirdan/tui-stack/internal/storage"
)

const fakeGameID = "fake"

// fakeGame ends after three taps.
type fakeGame struct {
	resets int
	steps  int
	score  int
	over   bool
}

func (g *fakeGame) ID() string    { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake Game" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.score = 0
	g.over = false
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	g.score += in.Count(core.ActionTap)
	if g.score >= 3 {
		g.over = true
		return core.StepResult{State: g.State(), Finished: true}
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, Height: g.score, GameOver: g.over}
}

func init() {
	registry.MustRegister(registry.GameInfo{ID: fakeGameID, Title: "Fake Game"}, func() registry.Game { return &fakeGame{} })
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

// send feeds one message through a GameModel.
func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func tapAndTick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})
	return m
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := testStore(t)
	game := &fakeGame{}
	m := NewGameModel(game, Env{Store: store, Player: "ann"}, testRuntime())
	m.Init()

	for i := 0; i < 3; i++ {
		m = tapAndTick(t, m)
	}
	if !m.gameState.GameOver {
		t.Fatal("game should be over after three taps")
	}

	// Further ticks must not save again
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, TickMsg{})
	}

	scores, err := store.AllScores(fakeGameID)
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 3 || got.Height != 3 || got.Player != "ann" || got.RunID != m.RunID() {
		t.Errorf("saved %+v", got)
	}
}

func TestGameModelRestart(t *testing.T) {
	game := &fakeGame{}
	m := NewGameModel(game, Env{}, testRuntime())
	m.Init()

	for i := 0; i < 3; i++ {
		m = tapAndTick(t, m)
	}
	firstRun := m.RunID()

	m, _ = send(t, m, runeKey("r"))
	m, _ = send(t, m, TickMsg{})

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.gameState.GameOver {
		t.Error("restart should clear game over")
	}
	if m.RunID() == firstRun {
		t.Error("restart should start a new run")
	}
	if m.scoreSaved {
		t.Error("new run should not be marked saved")
	}
}

func TestGameModelBackOnlyWhenFinished(t *testing.T) {
	game := &fakeGame{}
	m := NewGameModel(game, Env{}, testRuntime())
	m.Init()

	m, _ = send(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Error("back must be ignored mid-game")
	}

	for i := 0; i < 3; i++ {
		m = tapAndTick(t, m)
	}
	m, cmd := send(t, m, runeKey("b"))
	if !m.BackToMenu() {
		t.Error("back should work after game over")
	}
	if isQuit(cmd) {
		t.Error("session games hand control back instead of quitting")
	}

	standalone := NewGameModel(&fakeGame{over: true}, Env{}, testRuntime())
	standalone.standalone = true
	standalone.gameState.GameOver = true
	_, cmd = send(t, standalone, runeKey("b"))
	if !isQuit(cmd) {
		t.Error("standalone back should quit the program")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&fakeGame{}, Env{}, testRuntime())
	m, cmd := send(t, m, runeKey("q"))
	if !m.IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResize(t *testing.T) {
	game := &fakeGame{}
	m := NewGameModel(game, Env{}, testRuntime())
	m.Init()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 2 {
		t.Errorf("resize should rebuild the game, resets = %d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "fake game") {
		t.Error("view should contain the game render")
	}
}
