package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-stack/internal/core"
)

type fakeGame struct{ id string }

func (f *fakeGame) ID() string { return f.id }
func (f *fakeGame) Title() string { return "Fake " + f.id }
func (f *fakeGame) Reset(core.RuntimeConfig) {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen) {}
func (f *fakeGame) State() core.GameState { return core.GameState{} }

func fakeFactory(id string) Factory {
	return func() Game { return &fakeGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	if err := Register(GameInfo{ID: "test_b", Title: "Fake test_b"}, fakeFactory("test_b")); err != nil {
		t.Fatalf("Register(test_b) failed: %v", err)
	}
	if err := Register(GameInfo{ID: "test_a", Title: "Fake test_a", Summary: "a"}, fakeFactory("test_a")); err != nil {
		t.Fatalf("Register(test_a) failed: %v", err)
	}

	info, err := Lookup("test_a")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if info.Title != "Fake test_a" || info.Summary != "a" {
		t.Errorf("Lookup() = %+v", info)
	}
	if _, err := Lookup("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Lookup(missing) = %v, expected ErrUnknownGame", err)
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("Create() returned %q, expected test_a", g.ID())
	}
	if other, _ := Create("test_a"); other == g {
		t.Error("Create() should return a fresh instance each call")
	}
	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) = %v, expected ErrUnknownGame", err)
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterRejectsBadEntries(t *testing.T) {
	if err := Register(GameInfo{Title: "No ID"}, fakeFactory("x")); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("empty id = %v, expected ErrInvalidEntry", err)
	}
	if err := Register(GameInfo{ID: "test_nil"}, nil); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("nil factory = %v, expected ErrInvalidEntry", err)
	}

	if err := Register(GameInfo{ID: "test_untitled"}, fakeFactory("test_untitled")); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if info, _ := Lookup("test_untitled"); info.Title != "test_untitled" {
		t.Errorf("missing title should fall back to the id, got %q", info.Title)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	MustRegister(GameInfo{ID: "test_dup"}, fakeFactory("test_dup"))

	if err := Register(GameInfo{ID: "test_dup"}, fakeFactory("test_dup")); !errors.Is(err, ErrDuplicateGame) {
		t.Errorf("duplicate Register = %v, expected ErrDuplicateGame", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate MustRegister should panic")
		}
	}()
	MustRegister(GameInfo{ID: "test_dup"}, fakeFactory("test_dup"))
}
