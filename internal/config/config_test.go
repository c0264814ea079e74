package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.AssetDir != cfg.DataDir+"/assets" {
		t.Errorf("AssetDir = %q, want under DataDir", cfg.AssetDir)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ASSET_DIR", "/srv/watermarks")
	cfg := Load()
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.AssetDir != "/srv/watermarks" {
		t.Errorf("AssetDir = %q", cfg.AssetDir)
	}
}

func TestEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	if cfg := Load(); cfg.Port != 8080 {
		t.Errorf("Port = %d, want fallback 8080", cfg.Port)
	}
}
