package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/shape-shifter/internal/registry"
)

func TestConnectCommand(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2022", "ssh localhost -p 2022"},
		{"[::]:2022", "ssh localhost -p 2022"},
		{"arcade.example.com:4000", "ssh arcade.example.com -p 4000"},
		{"10.0.0.5:22", "ssh 10.0.0.5"},
		{"arcade.example.com", "ssh arcade.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := connectCommand(tt.addr); got != tt.want {
				t.Errorf("connectCommand(%q) = %q, expected %q", tt.addr, got, tt.want)
			}
		})
	}
}

func TestNewSSHServerRequiresFactory(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("Expected an error without a game factory")
	}
}

func TestSSHServerConnectCommandFollowsAddress(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = ":2222"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "shifter.db")
	cfg.NewGame = func(id string) (registry.Game, error) { return newFakeGame(1), nil }

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	defer srv.Shutdown() //nolint:errcheck // never started

	if got := srv.ConnectCommand(); got != "ssh localhost -p 2222" {
		t.Errorf("ConnectCommand() = %q", got)
	}
}
