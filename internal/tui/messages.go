package tui

import (
	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/overlay"

	tea "charm.land/bubbletea/v2"
)

// Session and navigation messages. Screens never touch app state; they
// return one of these and the root model applies it.
type (
	// LoginMsg asks the root to log in with the typed credentials.
	LoginMsg struct {
		Username string
		Password string
	}

	// LoginResultMsg reports a rejected login back to the login screen.
	LoginResultMsg struct {
		Err error
	}

	// LogoutMsg ends the session.
	LogoutMsg struct{}

	// SelectTabMsg switches the bottom navigation tab.
	SelectTabMsg struct {
		Tab nav.Tab
	}

	// SetRoleMsg changes the role and lands on its default tab.
	SetRoleMsg struct {
		Role nav.Role
	}

	// ToggleThemeMsg flips light/dark.
	ToggleThemeMsg struct{}

	// OpenOverlayMsg shows a bottom sheet, replacing any open one.
	OpenOverlayMsg struct {
		Overlay overlay.Overlay
	}

	// CloseOverlayMsg dismisses the bottom sheet.
	CloseOverlayMsg struct{}

	// VolunteerSubmittedMsg fires after the volunteer form's submit delay.
	// Form is the sheet that was submitted; a tick from a sheet that is no
	// longer mounted is dropped.
	VolunteerSubmittedMsg struct {
		Form ScreenModel
	}

	// ShowMessageDialogMsg shows a blocking notification.
	ShowMessageDialogMsg struct {
		Title   string
		Message string
		Type    MessageType
	}

	// CloseDialogMsg closes the notification.
	CloseDialogMsg struct{}

	// ConfigChangedMsg is sent when the config file is reloaded.
	ConfigChangedMsg struct {
		Config config.AppConfig
	}

	// QuitMsg requests application exit.
	QuitMsg struct{}
)

// Send wraps a message in a command.
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Notify shows a blocking notification.
func Notify(title, message string, t MessageType) tea.Cmd {
	return Send(ShowMessageDialogMsg{Title: title, Message: message, Type: t})
}
