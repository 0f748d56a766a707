// Package server serves the mockup over SSH. Each connection runs its own
// root model, so sessions never share state.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/datalab"
	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/logger"
	"GuardianesDelFuego/internal/tui"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"
)

// ShutdownTimeout bounds how long open sessions get to finish.
const ShutdownTimeout = 10 * time.Second

// Options tune a server beyond the config file.
type Options struct {
	Address string // overrides config.Server.Address when set
	Dark    bool
}

// Server is an SSH endpoint running one AppModel per session.
type Server struct {
	cfg  config.AppConfig
	data *demo.Dataset
	opts Options
	ssh  *ssh.Server
	ctx  context.Context
}

// New prepares the host key folder and the wish middleware chain.
func New(ctx context.Context, cfg config.AppConfig, data *demo.Dataset, opts Options) (*Server, error) {
	if opts.Address == "" {
		opts.Address = cfg.Server.Address
	}
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating host key folder: %w", err)
	}

	s := &Server{cfg: cfg, data: data, opts: opts, ctx: ctx}
	srv, err := wish.NewServer(
		wish.WithAddress(opts.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(sshLog{ctx}),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ssh server: %w", err)
	}
	s.ssh = srv
	return s, nil
}

// Address is where the server listens.
func (s *Server) Address() string { return s.opts.Address }

// Env builds the capabilities of one session. Copies go through OSC52 to
// the client's terminal; exports land in a per-session folder on the host.
func (s *Server) Env(ctx context.Context, id string) tui.Env {
	return tui.Env{
		Ctx:       ctx,
		Data:      s.data,
		Config:    s.cfg,
		Saver:     datalab.FileExporter{Dir: filepath.Join(s.cfg.ExportDir, "ssh", id)},
		SessionID: id,
	}
}

func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	id := uuid.NewString()
	logger.Info(s.ctx, "SSH session %s: user '%s' from %s", id, sess.User(), sess.RemoteAddr())
	m := tui.NewAppModel(sess.Context(), s.Env(sess.Context(), id), s.opts.Dark)
	return m, nil
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.opts.Address, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	logger.Info(ctx, "Serving on ssh://%s", ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.ssh.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	logger.Info(ctx, "Stopping SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.ssh.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("stopping ssh server: %w", err)
	}
	return nil
}

// sshLog sends wish's connection log lines to the app logger.
type sshLog struct {
	ctx context.Context
}

func (l sshLog) Printf(format string, args ...interface{}) {
	logger.Info(l.ctx, format, args...)
}
