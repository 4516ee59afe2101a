package config

import "testing"

func TestNewDefaultWebConfig(t *testing.T) {
	cfg := NewDefaultWebConfig()

	if cfg.ListenPort != DefaultWebPort {
		t.Errorf("Default listen port: expected %d, got %d", DefaultWebPort, cfg.ListenPort)
	}
	if cfg.SSL {
		t.Error("Default config should not enable SSL")
	}
	if cfg.CertFile != "" || cfg.KeyFile != "" {
		t.Errorf("Default config should not carry cert/key paths, got %q / %q", cfg.CertFile, cfg.KeyFile)
	}
}
