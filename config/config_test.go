package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Model.Path != "shoe_price_tree.json" {
		t.Fatalf("unexpected model path %q", config.Model.Path)
	}
	if config.Http.Port != 8501 {
		t.Fatalf("unexpected port %d", config.Http.Port)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := `
http:
  port: 9000
  timeout: 5s
model:
  path: models/tree.json
  watch: true
log:
  level: debug
  encoding: console
`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Http.Port != 9000 || config.Http.Timeout != 5*time.Second {
		t.Fatalf("unexpected http config: %+v", config.Http)
	}
	if config.Model.Path != "models/tree.json" || !config.Model.Watch {
		t.Fatalf("unexpected model config: %+v", config.Model)
	}
	if config.Session.CacheSize != 1024 {
		t.Fatalf("expected default cache size, got %d", config.Session.CacheSize)
	}
	if config.Log.Level != "debug" || config.Log.Encoding != "console" {
		t.Fatalf("unexpected log config: %+v", config.Log)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"port":     "http:\n  port: 70000\n",
		"path":     "model:\n  path: \"\"\n",
		"encoding": "log:\n  encoding: xml\n",
		"syntax":   "http: [",
	}
	for name, payload := range tests {
		path := filepath.Join(t.TempDir(), name+".yaml")
		if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
