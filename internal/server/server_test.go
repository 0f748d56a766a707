package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"GuardianesDelFuego/internal/config"
	"GuardianesDelFuego/internal/datalab"
	"GuardianesDelFuego/internal/demo"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ExportDir = filepath.Join(dir, "exports")
	cfg.HostKeyPath = filepath.Join(dir, "ssh", "id_ed25519")
	cfg.Server.Address = "127.0.0.1:0"
	return cfg
}

func TestSessionEnv(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(context.Background(), cfg, demo.Default(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Address() != "127.0.0.1:0" {
		t.Errorf("Address() = %q, want the config address", s.Address())
	}

	env := s.Env(context.Background(), "abc")
	if env.Clipboard != nil {
		t.Error("SSH sessions must copy through the terminal, not the host clipboard")
	}
	if env.SessionID != "abc" {
		t.Errorf("SessionID = %q", env.SessionID)
	}
	fe, ok := env.Saver.(datalab.FileExporter)
	if !ok || fe.Dir != filepath.Join(cfg.ExportDir, "ssh", "abc") {
		t.Errorf("Saver = %#v", env.Saver)
	}
}

func TestAddressOverride(t *testing.T) {
	s, err := New(context.Background(), testConfig(t), demo.Default(), Options{Address: "127.0.0.1:2222"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Address() != "127.0.0.1:2222" {
		t.Errorf("Address() = %q", s.Address())
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	s, err := New(context.Background(), testConfig(t), demo.Default(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	// The listener accepts while serving.
	conn, err := net.DialTimeout("tcp", ln.Addr().String(), time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	_ = conn.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned %v", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
