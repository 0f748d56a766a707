package screens

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/theme"
	"GuardianesDelFuego/internal/tui"

	tea "charm.land/bubbletea/v2"
)

var (
	keyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyDown     = tea.KeyPressMsg{Code: tea.KeyDown}
	keyRight    = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	keySpace    = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	keyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyBack     = tea.KeyPressMsg{Code: tea.KeyBackspace}
	keyTheme    = tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	keyQuit     = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
)

func keyF(n int) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyF1 + rune(n-1)}
}

// fakeClipboard records writes; err makes every write fail.
type fakeClipboard struct {
	mu   sync.Mutex
	text []string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.text = append(c.text, text)
	return nil
}

// fakeSaver keeps saved files in memory.
type fakeSaver struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func (s *fakeSaver) Save(name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	if s.files == nil {
		s.files = map[string][]byte{}
	}
	s.files[name] = data
	return "/tmp/exports/" + name, nil
}

var errDenied = errors.New("denied")

func testEnv() tui.Env {
	return tui.Env{
		Ctx:       context.Background(),
		Data:      demo.Default(),
		Config:    config.Default(),
		Saver:     &fakeSaver{},
		Clipboard: &fakeClipboard{},
		Now:       func() time.Time { return time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC) },
	}
}

func testContext(width int) tui.Context {
	return tui.Context{
		Styles: tui.NewStyles(theme.For(false), config.Default().UI),
		Config: config.Default(),
		Width:  width,
		Height: 30,
	}
}

// harness drives the root model the way the Bubble Tea runtime would:
// every command is run and its message fed back in.
type harness struct {
	t *testing.T
	m tui.AppModel
}

func newHarness(t *testing.T, env tui.Env) *harness {
	t.Helper()
	h := &harness{t: t, m: tui.NewAppModel(context.Background(), env, false)}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 50})
	h.run(h.m.Init())
	return h
}

func (h *harness) send(msgs ...tea.Msg) {
	h.t.Helper()
	for _, msg := range msgs {
		next, cmd := h.m.Update(msg)
		h.m = next.(tui.AppModel)
		h.run(cmd)
	}
}

func (h *harness) typeText(text string) {
	h.t.Helper()
	for _, r := range text {
		h.send(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	for _, msg := range drain(cmd) {
		h.send(msg)
	}
}

func (h *harness) login(user, password string) {
	h.t.Helper()
	h.typeText(user)
	h.send(keyEnter)
	h.typeText(password)
	h.send(keyEnter)
}

// drain runs cmd and any batched commands it returns. Commands that do
// not answer quickly (ticks) are dropped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(100 * time.Millisecond):
		return nil
	}
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case tea.QuitMsg:
		return nil
	}
	return []tea.Msg{msg}
}
