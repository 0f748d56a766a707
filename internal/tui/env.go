package tui

import (
	"context"
	"time"

	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/datalab"
	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/logger"

	tea "charm.land/bubbletea/v2"
)

// Env carries the capabilities a session exposes to its screens.
type Env struct {
	Ctx    context.Context
	Data   *demo.Dataset
	Config config.AppConfig

	// Saver stores exports. When nil, files go to Config.ExportDir, so a
	// reloaded config moves later exports.
	Saver datalab.Saver

	// Clipboard is the host clipboard. When nil, copies go through the
	// terminal (OSC52), which is what SSH sessions use.
	Clipboard datalab.Clipboard

	Now       func() time.Time
	SessionID string
}

const (
	MsgCopied     = "URL copiada"
	MsgCopyFailed = "No se pudo copiar"
)

// WithConfig returns a copy of e using cfg.
func (e Env) WithConfig(cfg config.AppConfig) Env {
	e.Config = cfg
	return e
}

// Context is the session context, never nil.
func (e Env) Context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// Today is the current date for default form values.
func (e Env) Today() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// CopyURL copies text and reports the outcome as a notification.
func (e Env) CopyURL(text string) tea.Cmd {
	if e.Clipboard == nil {
		return tea.Batch(
			tea.SetClipboard(text),
			Notify("Aviso", MsgCopied, MessageSuccess),
		)
	}
	ctx := e.Context()
	clip := e.Clipboard
	return func() tea.Msg {
		if err := clip.WriteAll(text); err != nil {
			logger.Warn(ctx, "Clipboard write failed: %v", err)
			return ShowMessageDialogMsg{Title: "Aviso", Message: MsgCopyFailed, Type: MessageError}
		}
		logger.Debug(ctx, "Copied %d bytes to the clipboard", len(text))
		return ShowMessageDialogMsg{Title: "Aviso", Message: MsgCopied, Type: MessageSuccess}
	}
}

// Export saves data under name and reports where it went.
func (e Env) Export(name string, data []byte) tea.Cmd {
	ctx := e.Context()
	saver := e.Saver
	if saver == nil {
		saver = datalab.FileExporter{Dir: e.Config.ExportDir}
	}
	return func() tea.Msg {
		path, err := saver.Save(name, data)
		if err != nil {
			logger.Error(ctx, "Export of '%s' failed: %v", name, err)
			return ShowMessageDialogMsg{
				Title:   "Descarga",
				Message: "No se pudo guardar el archivo: " + err.Error(),
				Type:    MessageError,
			}
		}
		logger.Info(ctx, "Exported '%s'", path)
		return ShowMessageDialogMsg{
			Title:   "Descarga",
			Message: "Archivo guardado en " + path,
			Type:    MessageSuccess,
		}
	}
}
