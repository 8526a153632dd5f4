package xdgconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultPopulatesBuiltins(t *testing.T) {
	cfg := Default()
	if cfg.Line.FramesPerSecond <= 0 {
		t.Fatalf("Line.FramesPerSecond = %v, want > 0", cfg.Line.FramesPerSecond)
	}
	if cfg.TUI.RecomputeColumnWidthEveryNthFrame < 1 {
		t.Fatalf("RecomputeColumnWidthEveryNthFrame = %d, want >= 1", cfg.TUI.RecomputeColumnWidthEveryNthFrame)
	}
	if !cfg.Line.Colored || !cfg.TUI.Colored {
		t.Fatal("expected color to default on")
	}
}

func TestLoadFallsBackToDefaultsWithoutConfigFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Line.FramesPerSecond != Default().Line.FramesPerSecond {
		t.Fatalf("Load() FramesPerSecond = %v, want default %v", cfg.Line.FramesPerSecond, Default().Line.FramesPerSecond)
	}
}

func TestLoadHonorsEnvironmentOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PRODASH_TUI_THROUGHPUT", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.TUI.Throughput {
		t.Fatal("expected PRODASH_TUI_THROUGHPUT=true to enable throughput")
	}
}

// TestWatchNotifiesOnRewrite exercises the fsnotify-backed reload path: a
// rewrite of the user config file after Watch returns must eventually
// produce a callback carrying the new value, not just the value Watch
// itself returned from the initial load.
func TestWatchNotifiesOnRewrite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "prodash", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte("tui:\n  throughput: false\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	changed := make(chan *Config, 1)
	cfg, err := Watch(func(c *Config, err error) {
		if err != nil {
			t.Errorf("onChange error = %v", err)
			return
		}
		changed <- c
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if cfg.TUI.Throughput {
		t.Fatal("initial load: expected throughput false")
	}

	if err := os.WriteFile(path, []byte("tui:\n  throughput: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case reloaded := <-changed:
		if !reloaded.TUI.Throughput {
			t.Fatal("reloaded config: expected throughput true")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config change notification")
	}
}
