package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/control"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/games/snake"
)

type fakeHand struct {
	swipes  []core.Direction
	pinches int
}

func (h *fakeHand) Swipe(d core.Direction) { h.swipes = append(h.swipes, d) }
func (h *fakeHand) TogglePinch()           { h.pinches++ }

func newTestModel(steer Steerable) (Model, *control.Buffer, *bool) {
	buf := control.NewBuffer()
	cancelled := false
	opts := Options{
		Game:   snake.New(config.DefaultConfig()),
		Buffer: buf,
		Cancel: func() { cancelled = true },
		Steer:  steer,
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 1},
	}
	m := NewModel(opts)
	m.Init()
	return m, buf, &cancelled
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQuitKeyStopsOnNextTick(t *testing.T) {
	m, _, cancelled := newTestModel(nil)

	next, cmd := m.Update(runes("q"))
	if cmd != nil {
		t.Fatal("quit key should wait for the game tick")
	}

	_, cmd = next.Update(TickMsg{})
	if !isQuit(cmd) {
		t.Error("tick after quit key should quit the program")
	}
	if !*cancelled {
		t.Error("capture context should be cancelled")
	}
}

func TestForceQuit(t *testing.T) {
	m, _, cancelled := newTestModel(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) || !*cancelled {
		t.Error("ctrl+c should quit immediately")
	}
}

func TestRestartKeyOnlyWhenGameOver(t *testing.T) {
	m, buf, _ := newTestModel(nil)

	m.Update(runes("r"))
	if d := buf.Take(); d != core.DirNone {
		t.Errorf("restart while playing: got %v, expected None", d)
	}

	m.gameState.GameOver = true
	m.Update(runes("r"))
	if d := buf.Take(); d != core.DirUp {
		t.Errorf("restart when game over: got %v, expected UP", d)
	}
}

func TestSteeringKeys(t *testing.T) {
	hand := &fakeHand{}
	m, buf, _ := newTestModel(hand)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(runes("w"))
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if len(hand.swipes) != 2 || hand.swipes[0] != core.DirLeft || hand.swipes[1] != core.DirUp {
		t.Errorf("swipes = %v, expected [LEFT UP]", hand.swipes)
	}
	if hand.pinches != 1 {
		t.Errorf("pinches = %d, expected 1", hand.pinches)
	}
	// Keys steer the hand, never the buffer
	if d := buf.Take(); d != core.DirNone {
		t.Errorf("buffer got %v", d)
	}
}

func TestSteeringDisabledWithoutHand(t *testing.T) {
	m, _, _ := newTestModel(nil)

	// Must not panic on a nil hand
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func TestTickConsumesBuffer(t *testing.T) {
	m, buf, _ := newTestModel(nil)

	buf.Put(core.DirDown)
	buf.SetBoost(true)
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if d := buf.Take(); d != core.DirNone {
		t.Errorf("direction not consumed, got %v", d)
	}

	nm := next.(Model)
	if nm.game.TickRate() != config.DefaultConfig().Speed.Boost {
		t.Errorf("tick rate = %d, expected boost rate", nm.game.TickRate())
	}
	if nm.game.Snapshot().Dir != core.DirDown {
		t.Errorf("direction = %v, expected DOWN", nm.game.Snapshot().Dir)
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _, _ := newTestModel(&fakeHand{})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help line")
	}
}
