package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files a test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected embedded", source)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded config %+v differs from DefaultSnakeConfig %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", FileName), "speed: easy\n")
	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speed != "easy" || source != filepath.Join("configs", FileName) {
		t.Errorf("local config: speed=%q source=%q", cfg.Speed, source)
	}

	userPath := filepath.Join(home, ".snake", FileName)
	writeFile(t, userPath, "speed: hard\n")
	cfg, source, err = LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Speed != "hard" || source != userPath {
		t.Errorf("user config should win over local: speed=%q source=%q", cfg.Speed, source)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "speed: normal\ntheme: ocean\n")
	cfg, source, err = LoadWithSource(custom)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "ocean" || source != custom {
		t.Errorf("custom path should win: theme=%q source=%q", cfg.Theme, source)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "board:\n  width: 30\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Width != 30 || cfg.Board.InitialLength != 3 || cfg.Speed != "normal" || cfg.SpawnAttempts != snake.DefaultSpawnAttempts {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadSkipsMalformedSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".snake", FileName), "board: [not a map\n")

	_, source, err := LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected the malformed user file to be skipped", source)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("missing file: err = %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "speed: [\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed file: err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"default", func(*SnakeConfig) {}, false},
		{"negative width", func(c *SnakeConfig) { c.Board.Width = -1 }, true},
		{"negative height", func(c *SnakeConfig) { c.Board.Height = -4 }, true},
		{"length zero", func(c *SnakeConfig) { c.Board.InitialLength = 0 }, true},
		{"length five", func(c *SnakeConfig) { c.Board.InitialLength = 5 }, true},
		{"length four", func(c *SnakeConfig) { c.Board.InitialLength = 4 }, false},
		{"unknown speed", func(c *SnakeConfig) { c.Speed = "ludicrous" }, true},
		{"speed any case", func(c *SnakeConfig) { c.Speed = "HARD" }, false},
		{"unknown theme", func(c *SnakeConfig) { c.Theme = "neon" }, true},
		{"negative spawn attempts", func(c *SnakeConfig) { c.SpawnAttempts = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngineResolvesNames(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Override("hard", "sunset")

	ec, err := cfg.Engine()
	if err != nil {
		t.Fatal(err)
	}
	if ec.Speed != snake.SpeedHard || ec.Theme != 3 {
		t.Errorf("Engine() = %+v", ec)
	}

	cfg.Override("", "")
	if cfg.Speed != "hard" || cfg.Theme != "sunset" {
		t.Error("empty overrides should keep the current values")
	}
}

func TestFitBoard(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.FitBoard(80, 24)
	if cfg.Board.Width != 78 || cfg.Board.Height != 20 {
		t.Errorf("FitBoard(80, 24) = %dx%d", cfg.Board.Width, cfg.Board.Height)
	}

	cfg = DefaultSnakeConfig()
	cfg.Board.Width = 20
	cfg.FitBoard(2, 2)
	if cfg.Board.Width != 20 || cfg.Board.Height != 1 {
		t.Errorf("explicit width should be kept and height floored at 1, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	isolate(t)
	cfg := DefaultSnakeConfig()
	cfg.Board.Width = 12
	cfg.Theme = "mono"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("Load(Marshal(cfg)) = %+v, expected %+v", got, cfg)
	}
}
