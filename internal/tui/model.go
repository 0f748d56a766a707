package tui

import (
	"context"

	"GuardianesDelFuego/internal/app"
	"GuardianesDelFuego/internal/console"
	"GuardianesDelFuego/internal/logger"
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/theme"
	"GuardianesDelFuego/internal/volunteer"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

type checkKey struct {
	role nav.Role
	tab  nav.Tab
}

// AppModel is the root Bubble Tea model. It owns the application state;
// screens only see snapshots and ask for changes through messages.
type AppModel struct {
	ctx   context.Context
	env   Env
	state *app.State

	// Terminal dimensions
	width  int
	height int

	// Ready flag (set after first WindowSizeMsg)
	ready bool

	styles   Styles
	layout   Layout
	helpline HelplineModel

	login        ScreenModel
	active       ScreenModel
	activeScreen nav.Screen
	sheet        ScreenModel
	sheetFor     overlay.Overlay
	dialog       *messageDialogModel

	body       viewport.Model
	sheetView  viewport.Model
	bodyFocus  int
	sheetFocus int

	lastCheck checkKey
}

// NewAppModel creates the root model for one session.
func NewAppModel(ctx context.Context, env Env, dark bool) AppModel {
	m := AppModel{
		ctx:        ctx,
		env:        env,
		state:      app.New(dark),
		layout:     GetLayout(),
		helpline:   NewHelplineModel(),
		body:       viewport.New(),
		sheetView:  viewport.New(),
		bodyFocus:  -1,
		sheetFocus: -1,
	}
	m.restyle()
	m.sync()
	return m
}

// Snapshot exposes the current state, mostly for tests.
func (m AppModel) Snapshot() app.Snapshot {
	return m.state.Snapshot()
}

// ActiveScreen is the screen in the body, or the login screen while
// logged out.
func (m AppModel) ActiveScreen() ScreenModel {
	if m.login != nil {
		return m.login
	}
	return m.active
}

// ActiveSheet is the open bottom sheet, if any.
func (m AppModel) ActiveSheet() ScreenModel {
	return m.sheet
}

// Dialog returns the notification being shown.
func (m AppModel) Dialog() (title, message string, ok bool) {
	if m.dialog == nil {
		return "", "", false
	}
	return m.dialog.title, m.dialog.message, true
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	var cmd tea.Cmd
	if m.login != nil {
		cmd = m.login.Init()
	}
	return logger.RecoverTUI(m.ctx, cmd)
}

// Update implements tea.Model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			// Suppress further panics during recovery
			defer func() { _ = recover() }()

			console.SetTUIEnabled(false)

			if _, ok := r.(logger.FatalError); ok {
				return
			}
			logger.FatalWithStackSkip(m.ctx, 2, "TUI Update Panic: %v", r)
		}
	}()

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	case LoginMsg:
		if err := m.state.Login(msg.Username, msg.Password); err != nil {
			logger.Debug(m.ctx, "Login rejected: %v", err)
			cmds = append(cmds, m.forwardLogin(LoginResultMsg{Err: err}))
		} else {
			logger.Info(m.ctx, "User '%s' logged in", msg.Username)
		}

	case LogoutMsg:
		logger.Info(m.ctx, "User '%s' logged out", m.state.Snapshot().Username)
		m.state.Logout()
		m.login = nil

	case SelectTabMsg:
		m.logRefusal(m.state.SelectTab(msg.Tab))

	case SetRoleMsg:
		m.logRefusal(m.state.SetRole(msg.Role))

	case ToggleThemeMsg:
		m.state.ToggleTheme()
		m.restyle()

	case OpenOverlayMsg:
		m.logRefusal(m.state.OpenOverlay(msg.Overlay))

	case CloseOverlayMsg:
		m.state.CloseOverlay()

	case VolunteerSubmittedMsg:
		if msg.Form != m.sheet {
			logger.Debug(m.ctx, "Dropping volunteer submit from a closed form")
			break
		}
		if m.state.CloseOverlayIf(overlay.KindVolunteer) {
			cmds = append(cmds, Notify("Voluntariado", volunteer.ThanksNotice, MessageSuccess))
		}

	case ShowMessageDialogMsg:
		m.dialog = newMessageDialog(msg.Title, msg.Message, msg.Type)

	case CloseDialogMsg:
		m.dialog = nil

	case ConfigChangedMsg:
		logger.Debug(m.ctx, "Config reloaded")
		m.env.Config = msg.Config
		m.restyle()

	case QuitMsg:
		return m, tea.Quit

	default:
		cmds = append(cmds, m.forwardLogin(msg), m.forwardScreen(msg), m.forwardSheet(msg))
	}

	cmds = append(cmds, m.sync())
	m.refresh()
	return m, logger.RecoverTUI(m.ctx, tea.Batch(cmds...))
}

func (m *AppModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, Keys.Quit) {
		return tea.Quit
	}

	// A notification blocks everything underneath it.
	if m.dialog != nil {
		_, cmd := m.dialog.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, Keys.ToggleTheme):
		m.state.ToggleTheme()
		m.restyle()
		return nil
	case key.Matches(msg, Keys.Help):
		m.helpline.Toggle()
		return nil
	}

	if !m.state.Snapshot().LoggedIn {
		return m.forwardLogin(msg)
	}

	if m.sheet != nil {
		switch {
		case key.Matches(msg, Keys.Close):
			m.state.CloseOverlay()
			return nil
		case key.Matches(msg, Keys.PageUp):
			m.sheetView.PageUp()
			return nil
		case key.Matches(msg, Keys.PageDown):
			m.sheetView.PageDown()
			return nil
		}
		return m.forwardSheet(msg)
	}

	for i, b := range Keys.TabKeys() {
		if key.Matches(msg, b) {
			m.logRefusal(m.state.SelectTabIndex(i))
			return nil
		}
	}
	switch {
	case key.Matches(msg, Keys.PrevTab):
		m.logRefusal(m.state.CycleTab(-1))
		return nil
	case key.Matches(msg, Keys.NextTab):
		m.logRefusal(m.state.CycleTab(1))
		return nil
	case key.Matches(msg, Keys.PageUp):
		m.body.PageUp()
		return nil
	case key.Matches(msg, Keys.PageDown):
		m.body.PageDown()
		return nil
	}
	return m.forwardScreen(msg)
}

func (m *AppModel) forwardLogin(msg tea.Msg) tea.Cmd {
	if m.login == nil {
		return nil
	}
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	return cmd
}

func (m *AppModel) forwardScreen(msg tea.Msg) tea.Cmd {
	if m.active == nil {
		return nil
	}
	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return cmd
}

func (m *AppModel) forwardSheet(msg tea.Msg) tea.Cmd {
	if m.sheet == nil {
		return nil
	}
	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	return cmd
}

func (m AppModel) logRefusal(err error) {
	if err != nil {
		logger.Warn(m.ctx, "Navigation refused: %v", err)
	}
}

func (m *AppModel) restyle() {
	dark := m.state.Snapshot().Dark
	m.styles = NewStyles(theme.For(dark), m.env.Config.UI)
	m.helpline.SetDark(dark)
	m.body.Style = m.styles.Screen.Padding(0, 1)
	m.sheetView.Style = m.styles.Screen
}

// sync brings the mounted screens in line with the state. A screen is
// rebuilt whenever it changes, so leaving a tab discards its local state.
func (m *AppModel) sync() tea.Cmd {
	snap := m.state.Snapshot()
	var cmds []tea.Cmd

	if !snap.LoggedIn {
		m.active, m.activeScreen = nil, nav.ScreenNone
		m.sheet, m.sheetFor = nil, nil
		if m.login == nil {
			m.login = newLogin(m.env)
			m.bodyFocus = -1
			m.body.GotoTop()
			cmds = append(cmds, m.login.Init())
		}
	} else {
		m.login = nil
		if m.active == nil || snap.Screen != m.activeScreen {
			m.active = newScreen(m.env, snap.Screen)
			m.activeScreen = snap.Screen
			m.bodyFocus = -1
			m.body.GotoTop()
			cmds = append(cmds, m.active.Init())
		}
		if ck := (checkKey{snap.Role, snap.Tab}); ck != m.lastCheck {
			m.lastCheck = ck
			m.selfCheck(snap)
		}

		switch {
		case snap.Overlay == nil:
			m.sheet, m.sheetFor = nil, nil
		case m.sheet == nil || snap.Overlay != m.sheetFor:
			m.sheet = newSheet(m.env, snap.Overlay)
			m.sheetFor = snap.Overlay
			m.sheetFocus = -1
			m.sheetView.GotoTop()
			cmds = append(cmds, m.sheet.Init())
		}
	}

	return tea.Batch(cmds...)
}

func (m AppModel) selfCheck(snap app.Snapshot) {
	results := app.SelfCheck(snap, m.env.Data)
	for _, r := range results {
		logger.Debug(m.ctx, "Self-check '%s': pass=%t (%s)", r.Test, r.Pass, r.Details)
	}
	if !app.AllPassed(results) {
		logger.Warn(m.ctx, "Self-check failed for role '%s' tab '%s'", snap.Role, snap.Tab)
	}
}

// frameSize fits the phone frame and the help line into the terminal.
func (m AppModel) frameSize() (int, int) {
	help := lipgloss.Height(m.helpline.View(m.width))
	return m.layout.FrameSize(m.width, m.height-help+1)
}

// refresh pushes sizes and context to the screens and re-renders their
// content into the viewports.
func (m *AppModel) refresh() {
	if !m.ready {
		return
	}
	snap := m.state.Snapshot()
	frameW, frameH := m.frameSize()
	innerW := m.layout.InnerWidth(frameW)
	bodyH := m.layout.BodyHeight(frameH, snap.LoggedIn)

	m.body.SetWidth(innerW)
	m.body.SetHeight(bodyH)

	screen := m.ActiveScreen()
	if screen != nil {
		screen.SetContext(Context{
			Snap:   snap,
			Styles: m.styles,
			Config: m.env.Config,
			Width:  innerW - 2,
			Height: bodyH,
		})
		m.body.SetContent(screen.ViewString())
		if fr, ok := screen.(FocusReporter); ok {
			if fl := fr.FocusLine(); fl != m.bodyFocus {
				m.body.EnsureVisible(fl, 0, 0)
				m.bodyFocus = fl
			}
		}
	}

	if m.sheet != nil {
		sheetW := innerW - 4
		area := SheetArea(m.layout, frameH) - 1
		m.sheet.SetContext(Context{
			Snap:   snap,
			Styles: m.styles,
			Config: m.env.Config,
			Width:  sheetW,
			Height: area,
		})
		content := m.sheet.ViewString()
		m.sheetView.SetWidth(sheetW)
		m.sheetView.SetHeight(m.layout.SheetHeight(area, lipgloss.Height(content)))
		m.sheetView.SetContent(content)
		if fr, ok := m.sheet.(FocusReporter); ok {
			if fl := fr.FocusLine(); fl != m.sheetFocus {
				m.sheetView.EnsureVisible(fl, 0, 0)
				m.sheetFocus = fl
			}
		}
	}

	if m.dialog != nil {
		m.dialog.SetContext(m.styles, innerW-2)
	}
}

// View implements tea.Model
func (m AppModel) View() tea.View {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(m.ctx, "AppModel.View Panic: %v", r)
		}
	}()

	if !m.ready {
		return tea.NewView("Cargando...")
	}

	s := m.styles
	snap := m.state.Snapshot()
	frameW, frameH := m.frameSize()

	parts := FrameParts{LoggedIn: snap.LoggedIn, Body: m.body.View()}
	if snap.LoggedIn && m.active != nil {
		chip := false
		if rc, ok := m.active.(RoleChipper); ok {
			chip = rc.ShowRoleChip()
		}
		location := ""
		if m.env.Data != nil {
			location = m.env.Data.Location
		}
		parts.Header = HeaderModel{
			Location: location,
			Title:    m.active.Title(),
			Role:     snap.Role,
			RoleChip: chip,
			Dark:     snap.Dark,
		}
		parts.Nav = NavModel{Tabs: snap.Tabs, Active: snap.Tab}
	}
	inner := RenderInner(s, m.layout, frameW, frameH, parts)

	// Layer 1: bottom sheet
	if m.sheet != nil {
		sheet := s.Sheet.Padding(0, 1).Render(m.sheetView.View())
		inner = Overlay(sheet, inner, OverlayLeft, OverlayBottom, 0, 0)
	}

	// Layer 2: notification
	if m.dialog != nil {
		inner = Overlay(m.dialog.ViewString(), inner, OverlayCenter, OverlayCenter, 0, 0)
	}

	screen := lipgloss.JoinVertical(lipgloss.Center,
		RenderFrame(s, inner),
		m.helpline.View(m.width),
	)
	v := tea.NewView(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen))
	v.AltScreen = true
	v.BackgroundColor = theme.Color(s.Palette.Background)
	return v
}
