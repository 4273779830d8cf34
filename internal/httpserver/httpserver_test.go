package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/httpserver"
	"clinic-assistant/internal/middleware"
	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/scope"
)

type stubAssistantHandler struct{}

func (stubAssistantHandler) SendMessage(c *gin.Context)      { c.Status(http.StatusOK) }
func (stubAssistantHandler) ExpandSuggestion(c *gin.Context) { c.Status(http.StatusOK) }
func (stubAssistantHandler) Transcript(c *gin.Context)       { c.Status(http.StatusOK) }
func (stubAssistantHandler) ResetSession(c *gin.Context)     { c.Status(http.StatusOK) }
func (stubAssistantHandler) Greeting(c *gin.Context)         { c.Status(http.StatusOK) }
func (stubAssistantHandler) GetStats(c *gin.Context)         { c.Status(http.StatusOK) }
func (stubAssistantHandler) UpdateStats(c *gin.Context)      { c.Status(http.StatusOK) }

type stubTaskHandler struct{}

func (stubTaskHandler) List(c *gin.Context)     { c.Status(http.StatusOK) }
func (stubTaskHandler) Detail(c *gin.Context)   { c.Status(http.StatusOK) }
func (stubTaskHandler) Complete(c *gin.Context) { c.Status(http.StatusOK) }

type stubTelegramHandler struct{}

func (stubTelegramHandler) HandleWebhook(c *gin.Context) { c.Status(http.StatusOK) }

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()
	cfg.Middleware = middleware.New(log.NewNop(), scope.New("secret", ""), middleware.Config{TelegramSecret: "tg-secret"})
	srv, err := httpserver.New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func baseConfig() httpserver.Config {
	return httpserver.Config{
		Port:             8080,
		Mode:             gin.TestMode,
		Environment:      "development",
		AssistantHandler: stubAssistantHandler{},
		TaskHandler:      stubTaskHandler{},
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*httpserver.Config)
	}{
		{"missing port", func(c *httpserver.Config) { c.Port = 0 }},
		{"missing mode", func(c *httpserver.Config) { c.Mode = "" }},
		{"missing assistant handler", func(c *httpserver.Config) { c.AssistantHandler = nil }},
		{"missing task handler", func(c *httpserver.Config) { c.TaskHandler = nil }},
		{"production without origins", func(c *httpserver.Config) { c.Environment = "production" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)
			if _, err := httpserver.New(log.NewNop(), cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, baseConfig())

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var body struct {
				Data map[string]any `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Data["service"] != httpserver.ServiceName {
				t.Errorf("unexpected service: %v", body.Data["service"])
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("expected request id header")
			}
		})
	}
}

func TestDomainRoutesRequireAuth(t *testing.T) {
	srv := newServer(t, baseConfig())

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/assistant/messages"},
		{http.MethodGet, "/api/v1/stats"},
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks/t-1/complete"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestTelegramWebhookRoute(t *testing.T) {
	t.Run("not registered without handler", func(t *testing.T) {
		srv := newServer(t, baseConfig())
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("guarded by secret token", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TelegramHandler = stubTelegramHandler{}
		srv := newServer(t, cfg)

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403 without secret, got %d", w.Code)
		}

		req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil)
		req.Header.Set(middleware.TelegramSecretHeader, "tg-secret")
		w = httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200 with secret, got %d", w.Code)
		}
	})
}
