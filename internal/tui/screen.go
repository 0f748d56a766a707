package tui

import (
	"GuardianesDelFuego/internal/app"
	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/overlay"

	tea "charm.land/bubbletea/v2"
)

// Context is the read-only snapshot handed to screens.
type Context struct {
	Snap   app.Snapshot
	Styles Styles
	Config config.AppConfig
	Width  int
	Height int
}

// ScreenModel is the interface for every screen and bottom sheet.
type ScreenModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (ScreenModel, tea.Cmd)
	ViewString() string
	Title() string
	SetContext(ctx Context)
}

// FocusReporter is implemented by screens that know which line their
// focused control is on.
type FocusReporter interface {
	FocusLine() int
}

// RoleChipper is implemented by screens that show the role chip in the top
// bar.
type RoleChipper interface {
	ShowRoleChip() bool
}

type (
	// ScreenFactory builds a fresh screen.
	ScreenFactory func(env Env) ScreenModel
	// SheetFactory builds a bottom sheet for an overlay.
	SheetFactory func(env Env, o overlay.Overlay) ScreenModel
)

var (
	screenFactories = map[nav.Screen]ScreenFactory{}
	sheetFactories  = map[overlay.Kind]SheetFactory{}
	loginFactory    ScreenFactory
)

// RegisterScreen makes a screen available to the shell.
func RegisterScreen(s nav.Screen, f ScreenFactory) {
	screenFactories[s] = f
}

// RegisterSheet makes a bottom sheet available for an overlay kind.
func RegisterSheet(k overlay.Kind, f SheetFactory) {
	sheetFactories[k] = f
}

// RegisterLogin sets the screen shown while logged out.
func RegisterLogin(f ScreenFactory) {
	loginFactory = f
}

func newScreen(env Env, s nav.Screen) ScreenModel {
	if f, ok := screenFactories[s]; ok {
		return f(env)
	}
	return &placeholderScreen{title: s.String()}
}

func newSheet(env Env, o overlay.Overlay) ScreenModel {
	if f, ok := sheetFactories[o.Kind()]; ok {
		return f(env, o)
	}
	return &placeholderScreen{title: o.Kind().String()}
}

func newLogin(env Env) ScreenModel {
	if loginFactory != nil {
		return loginFactory(env)
	}
	return &placeholderScreen{title: "login"}
}

// placeholderScreen stands in for anything not registered.
type placeholderScreen struct {
	title string
	ctx   Context
}

func (p *placeholderScreen) Init() tea.Cmd                         { return nil }
func (p *placeholderScreen) Update(tea.Msg) (ScreenModel, tea.Cmd) { return p, nil }
func (p *placeholderScreen) Title() string                         { return p.title }
func (p *placeholderScreen) SetContext(ctx Context)                { p.ctx = ctx }
func (p *placeholderScreen) ViewString() string {
	return p.ctx.Styles.Sub.Render("(" + p.title + ")")
}
