package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	assistantHTTP "clinic-assistant/internal/assistant/delivery/http"
	"clinic-assistant/internal/assistant/usecase"
	"clinic-assistant/internal/middleware"
	"clinic-assistant/internal/model"
	"clinic-assistant/internal/router"
	"clinic-assistant/internal/stats"
	taskRepo "clinic-assistant/internal/task/repository/memory"
	taskUC "clinic-assistant/internal/task/usecase"
	"clinic-assistant/internal/transcript"
	"clinic-assistant/pkg/datemath"
	"clinic-assistant/pkg/log"
	"clinic-assistant/pkg/scope"
	"clinic-assistant/pkg/taskparser"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type fixture struct {
	router *gin.Engine
	jwt    scope.Manager
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}
	clock := func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }
	tasks := taskUC.New(log.NewNop(), taskRepo.New(log.NewNop()), dm, taskUC.WithClock(clock))
	uc := usecase.New(
		log.NewNop(),
		router.New(log.NewNop(), taskparser.New(dm, taskparser.WithClock(clock))),
		transcript.New(10, time.Hour),
		stats.New(model.Stats{TotalRecords: 3}),
		tasks,
	)

	jwtManager := scope.New("secret", "")
	mw := middleware.New(log.NewNop(), jwtManager, middleware.Config{})

	r := gin.New()
	assistantHTTP.RegisterRoutes(r.Group("/api/v1"), assistantHTTP.New(log.NewNop(), uc, false), mw)
	return fixture{router: r, jwt: jwtManager}
}

func (f fixture) do(t *testing.T, method, path string, sc *model.Scope, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sc != nil {
		tok, err := f.jwt.Sign(scope.Payload{UserID: sc.UserID, Username: sc.Username, Role: string(sc.Role)}, time.Hour)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func TestAssistantRoutes(t *testing.T) {
	f := newFixture(t)
	admin := model.Scope{UserID: "u-admin", Username: "Admin", Role: model.RoleAdmin}
	patient := model.Scope{UserID: "u-pat", Role: model.RolePatient}

	t.Run("requires auth", func(t *testing.T) {
		code, _ := f.do(t, http.MethodPost, "/api/v1/assistant/messages", nil, map[string]any{"text": "hi"})
		if code != http.StatusUnauthorized {
			t.Errorf("status = %d", code)
		}
	})

	t.Run("missing text", func(t *testing.T) {
		code, _ := f.do(t, http.MethodPost, "/api/v1/assistant/messages", &admin, map[string]any{})
		if code != http.StatusBadRequest {
			t.Errorf("status = %d", code)
		}
	})

	t.Run("send message", func(t *testing.T) {
		code, env := f.do(t, http.MethodPost, "/api/v1/assistant/messages", &admin, map[string]any{
			"session_id": "s1",
			"text":       "tổng quan hệ thống",
		})
		if code != http.StatusOK {
			t.Fatalf("status = %d, body = %+v", code, env)
		}
		var data struct {
			Greeting *model.Message `json:"greeting"`
			Reply    model.Message  `json:"reply"`
			Intent   string         `json:"intent"`
			Actions  []string       `json:"actions"`
		}
		json.Unmarshal(env.Data, &data)
		if data.Intent != string(router.IntentAdminOverview) {
			t.Errorf("intent = %s", data.Intent)
		}
		if data.Greeting == nil || data.Reply.Type != model.MessageTypeAI || data.Actions == nil {
			t.Errorf("unexpected payload: %+v", data)
		}
	})

	t.Run("capture tasks per request", func(t *testing.T) {
		code, env := f.do(t, http.MethodPost, "/api/v1/assistant/messages", &admin, map[string]any{
			"session_id":    "s1",
			"text":          "Nhắc tôi họp lúc 14:30 ngày mai",
			"capture_tasks": true,
		})
		if code != http.StatusOK {
			t.Fatalf("status = %d", code)
		}
		var data struct {
			TaskCreated bool `json:"task_created"`
			Task        *struct {
				ID      string `json:"id"`
				DueTime string `json:"due_time"`
			} `json:"task"`
		}
		json.Unmarshal(env.Data, &data)
		if !data.TaskCreated || data.Task == nil || data.Task.ID == "" || data.Task.DueTime != "14:30" {
			t.Errorf("unexpected task payload: %s", env.Data)
		}
	})

	t.Run("transcript and reset", func(t *testing.T) {
		code, env := f.do(t, http.MethodGet, "/api/v1/assistant/sessions/s1/messages", &admin, nil)
		if code != http.StatusOK {
			t.Fatalf("status = %d", code)
		}
		var data struct {
			Messages []model.Message `json:"messages"`
		}
		json.Unmarshal(env.Data, &data)
		if len(data.Messages) != 5 {
			t.Errorf("expected 5 messages, got %d", len(data.Messages))
		}

		if code, _ := f.do(t, http.MethodDelete, "/api/v1/assistant/sessions/s1", &admin, nil); code != http.StatusOK {
			t.Fatalf("reset status = %d", code)
		}
		_, env = f.do(t, http.MethodGet, "/api/v1/assistant/sessions/s1/messages", &admin, nil)
		json.Unmarshal(env.Data, &data)
		if len(data.Messages) != 0 {
			t.Errorf("expected empty transcript after reset, got %d", len(data.Messages))
		}
	})

	t.Run("expand suggestion", func(t *testing.T) {
		code, env := f.do(t, http.MethodPost, "/api/v1/assistant/suggestions", &admin, map[string]any{"text": "Sao lưu dữ liệu"})
		if code != http.StatusOK {
			t.Fatalf("status = %d", code)
		}
		var data struct {
			Text string `json:"text"`
		}
		json.Unmarshal(env.Data, &data)
		if data.Text == "" || data.Text == "Sao lưu dữ liệu" {
			t.Errorf("suggestion not expanded: %q", data.Text)
		}
	})

	t.Run("greeting", func(t *testing.T) {
		code, env := f.do(t, http.MethodGet, "/api/v1/assistant/greeting", &patient, nil)
		if code != http.StatusOK {
			t.Fatalf("status = %d", code)
		}
		var data struct {
			Message model.Message `json:"message"`
		}
		json.Unmarshal(env.Data, &data)
		if data.Message.Content == "" || len(data.Message.Suggestions) == 0 {
			t.Errorf("unexpected greeting: %+v", data.Message)
		}
	})

	t.Run("stats", func(t *testing.T) {
		code, env := f.do(t, http.MethodGet, "/api/v1/stats", &admin, nil)
		var got model.Stats
		json.Unmarshal(env.Data, &got)
		if code != http.StatusOK || got.TotalRecords != 3 {
			t.Fatalf("status = %d stats = %+v", code, got)
		}

		code, _ = f.do(t, http.MethodPut, "/api/v1/stats", &patient, map[string]any{"total_records": 10})
		if code != http.StatusForbidden {
			t.Errorf("patient update status = %d", code)
		}

		code, _ = f.do(t, http.MethodPut, "/api/v1/stats", &admin, map[string]any{"total_records": -1})
		if code != http.StatusBadRequest {
			t.Errorf("negative update status = %d", code)
		}

		code, _ = f.do(t, http.MethodPut, "/api/v1/stats", &admin, map[string]any{"total_records": 10, "completed": 4})
		if code != http.StatusOK {
			t.Fatalf("update status = %d", code)
		}
		_, env = f.do(t, http.MethodGet, "/api/v1/stats", &admin, nil)
		json.Unmarshal(env.Data, &got)
		if got.TotalRecords != 10 || got.Completed != 4 {
			t.Errorf("stats not updated: %+v", got)
		}
	})
}
