package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clinic-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0644)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from installed app config missing token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(t.TempDir(), "none.json"))
		if err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		os.WriteFile(path, []byte(`{"broken":true}`), 0644)

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path, "")
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", "")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Create Event E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:     "Title",
			Description: "Desc",
			StartTime:   time.Now(),
			EndTime:     time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" {
			t.Errorf("unexpected id: %s", event.ID)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
	})

	t.Run("Create Event sends reminders and timed range", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &body)
			w.Write([]byte(`{"id": "event-1"}`))
		})

		loc := time.FixedZone("ICT", 7*3600)
		start := time.Date(2024, 5, 2, 14, 30, 0, 0, loc)
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "clinic",
			Summary:    "Họp khoa",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			Timezone:   "Asia/Ho_Chi_Minh",
			Reminders:  []gcalendar.Reminder{{Method: gcalendar.ReminderPopup, Minutes: 60}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		startField, _ := body["start"].(map[string]any)
		if startField["dateTime"] != "2024-05-02T14:30:00+07:00" {
			t.Errorf("start.dateTime = %v", startField["dateTime"])
		}
		if startField["timeZone"] != "Asia/Ho_Chi_Minh" {
			t.Errorf("start.timeZone = %v", startField["timeZone"])
		}

		reminders, _ := body["reminders"].(map[string]any)
		if reminders["useDefault"] != false {
			t.Errorf("reminders.useDefault = %v, want false", reminders["useDefault"])
		}
		overrides, _ := reminders["overrides"].([]any)
		if len(overrides) != 1 {
			t.Fatalf("expected 1 override, got %d", len(overrides))
		}
		o, _ := overrides[0].(map[string]any)
		if o["method"] != "popup" || o["minutes"] != float64(60) {
			t.Errorf("unexpected override: %v", o)
		}
	})

	t.Run("Create Event all day", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "event-2"}`))
		})

		day := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Nộp báo cáo",
			StartTime: day,
			EndTime:   day.AddDate(0, 0, 1),
			AllDay:    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		startField, _ := body["start"].(map[string]any)
		endField, _ := body["end"].(map[string]any)
		if startField["date"] != "2024-05-03" || endField["date"] != "2024-05-04" {
			t.Errorf("unexpected all-day range: %v -> %v", startField, endField)
		}
		if _, ok := startField["dateTime"]; ok {
			t.Errorf("all-day event must not carry dateTime")
		}
		if _, ok := body["reminders"]; ok {
			t.Errorf("reminders should be omitted when none are requested")
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})

	t.Run("Mark Done patches summary", func(t *testing.T) {
		var method, path string
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "event-9"}`))
		})

		if err := client.MarkDone(context.Background(), "", "event-9", "Gọi bệnh nhân"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method != http.MethodPatch || path != "/calendar/v3/calendars/primary/events/event-9" {
			t.Errorf("unexpected request %s %s", method, path)
		}
		if body["summary"] != "✅ Gọi bệnh nhân" {
			t.Errorf("summary = %v", body["summary"])
		}
	})
}
