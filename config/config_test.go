package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected http config: %+v", cfg.HTTPServer)
	}
	if cfg.Assistant.Timezone != "Asia/Ho_Chi_Minh" || cfg.Assistant.SessionTTL != 24*time.Hour {
		t.Errorf("unexpected assistant config: %+v", cfg.Assistant)
	}
	if !cfg.Telegram.CaptureTasks || cfg.Assistant.CaptureTasks {
		t.Errorf("unexpected capture defaults: telegram=%v http=%v", cfg.Telegram.CaptureTasks, cfg.Assistant.CaptureTasks)
	}
	if len(cfg.CORS.AllowOrigins) != 1 {
		t.Errorf("unexpected cors origins: %v", cfg.CORS.AllowOrigins)
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("CLINIC_TEST_SECRET", "from-env")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"${CLINIC_TEST_SECRET}", "from-env"},
		{"${CLINIC_TEST_MISSING}", "${CLINIC_TEST_MISSING}"},
	}
	for _, tt := range tests {
		if got := expandEnvVar(tt.in); got != tt.want {
			t.Errorf("expandEnvVar(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.com, ,http://b.com ")
	if len(got) != 2 || got[0] != "http://a.com" || got[1] != "http://b.com" {
		t.Errorf("unexpected list: %v", got)
	}
	if splitList("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{HTTPServer: HTTPServerConfig{Port: 8080}}, false},
		{"bad port", Config{}, true},
		{"production without secret", Config{
			Environment: EnvironmentConfig{Name: "production"},
			HTTPServer:  HTTPServerConfig{Port: 8080},
		}, true},
		{"negative rate", Config{HTTPServer: HTTPServerConfig{Port: 8080}, RateLimit: RateLimitConfig{PerMin: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
