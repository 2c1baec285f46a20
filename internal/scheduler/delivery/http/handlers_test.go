package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"smart-scheduler/internal/middleware"
	"smart-scheduler/internal/schedcache"
	schedhttp "smart-scheduler/internal/scheduler/delivery/http"
	"smart-scheduler/internal/scheduler/usecase"
	"smart-scheduler/pkg/gcalendar"
	"smart-scheduler/pkg/metrics"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	events  []gcalendar.Event
	err     error
	calls   int
	lastReq gcalendar.ListEventsRequest
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.calls++
	m.lastReq = req
	return m.events, m.err
}

type testEnv struct {
	router  *gin.Engine
	cache   *schedcache.Cache
	metrics *metrics.Metrics
	cal     *mockCalendar
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	frozen := func() time.Time {
		return time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC) // Monday
	}
	uc := usecase.New(l, usecase.Defaults{}, frozen)

	env := &testEnv{
		cache:   schedcache.New(16, time.Minute),
		metrics: metrics.New(),
		cal:     &mockCalendar{},
	}

	h := schedhttp.New(l, uc, schedhttp.Config{
		Cache:    env.cache,
		Metrics:  env.metrics,
		Calendar: env.cal,
		Now:      frozen,
	})

	env.router = gin.New()
	mw := middleware.New(l, middleware.Config{}, env.metrics)
	schedhttp.RegisterRoutes(env.router.Group("/api/v1"), h, mw)
	return env
}

func (e *testEnv) post(t *testing.T, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v\nbody: %s", err, w.Body.String())
	}
	return w, resp
}

const basicScheduleBody = `{
	"tasks": [{"title": "Write report", "estimatedDuration": 60}],
	"preferences": {
		"workingHours": {"start": "09:00", "end": "17:00"},
		"workingDays": ["monday", "tuesday", "wednesday", "thursday", "friday"],
		"breakDuration": 15
	},
	"startDate": "2024-05-06T08:00:00Z"
}`

func dataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

func TestScheduleEndpoint_OK(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.post(t, "/api/v1/schedule", basicScheduleBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if resp["message"] != "Success" {
		t.Errorf("message = %v, want Success", resp["message"])
	}

	data := dataOf(t, resp)
	schedule, _ := data["schedule"].([]any)
	if len(schedule) != 1 {
		t.Fatalf("schedule has %d entries, want 1", len(schedule))
	}
	first := schedule[0].(map[string]any)
	if first["startTime"] != "2024-05-06T09:00:00.000Z" {
		t.Errorf("startTime = %v, want 2024-05-06T09:00:00.000Z", first["startTime"])
	}
	if first["endTime"] != "2024-05-06T10:00:00.000Z" {
		t.Errorf("endTime = %v, want 2024-05-06T10:00:00.000Z", first["endTime"])
	}

	summary := data["summary"].(map[string]any)
	if summary["totalTasks"] != float64(1) || summary["scheduledTasks"] != float64(1) {
		t.Errorf("unexpected summary: %v", summary)
	}
}

func TestScheduleEndpoint_ValidationError(t *testing.T) {
	env := newTestEnv(t)

	body := `{"tasks": [{"title": "Bad", "priority": "urgent"}], "startDate": "2024-05-06T08:00:00Z"}`
	w, resp := env.post(t, "/api/v1/schedule", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
	if resp["error_code"] != float64(1) {
		t.Errorf("error_code = %v, want 1", resp["error_code"])
	}
	msg, _ := resp["message"].(string)
	if !strings.Contains(msg, "priority") {
		t.Errorf("message %q does not mention priority", msg)
	}
}

func TestScheduleEndpoint_MalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.post(t, "/api/v1/schedule", `{"tasks": [`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestScheduleEndpoint_MissingTasks(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.post(t, "/api/v1/schedule", `{"startDate": "2024-05-06T08:00:00Z"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestScheduleEndpoint_CachesPinnedRequests(t *testing.T) {
	env := newTestEnv(t)

	w1, resp1 := env.post(t, "/api/v1/schedule", basicScheduleBody)
	w2, resp2 := env.post(t, "/api/v1/schedule", basicScheduleBody)
	if w1.Code != http.StatusOK || w2.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d, want 200", w1.Code, w2.Code)
	}

	if env.cache.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", env.cache.Len())
	}
	if got := testutil.ToFloat64(env.metrics.CacheHits); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(env.metrics.CacheMisses); got != 1 {
		t.Errorf("cache misses = %v, want 1", got)
	}

	b1, _ := json.Marshal(resp1["data"])
	b2, _ := json.Marshal(resp2["data"])
	if string(b1) != string(b2) {
		t.Errorf("cached response differs from the original")
	}
}

func TestScheduleEndpoint_NoStartDateIsNotCached(t *testing.T) {
	env := newTestEnv(t)

	body := `{"tasks": [{"title": "Floating", "estimatedDuration": 30}]}`
	w, _ := env.post(t, "/api/v1/schedule", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if env.cache.Len() != 0 {
		t.Errorf("cache holds %d entries, want 0", env.cache.Len())
	}
}

func TestScheduleEndpoint_MergesCalendarEvents(t *testing.T) {
	env := newTestEnv(t)
	env.cal.events = []gcalendar.Event{{
		Summary:   "Standup",
		StartTime: time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC),
	}}

	body := `{
		"tasks": [{"title": "Write report", "estimatedDuration": 30}],
		"preferences": {
			"workingHours": {"start": "09:00", "end": "17:00"},
			"workingDays": ["monday", "tuesday", "wednesday", "thursday", "friday"],
			"breakDuration": 15
		},
		"startDate": "2024-05-06T08:00:00Z",
		"includeCalendarEvents": true
	}`
	w, resp := env.post(t, "/api/v1/schedule", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if env.cal.calls != 1 {
		t.Fatalf("calendar called %d times, want 1", env.cal.calls)
	}

	schedule := dataOf(t, resp)["schedule"].([]any)
	first := schedule[0].(map[string]any)
	if first["startTime"] != "2024-05-06T10:15:00.000Z" {
		t.Errorf("startTime = %v, want placement after the standup plus buffer", first["startTime"])
	}
	if env.cache.Len() != 0 {
		t.Errorf("calendar-merged response was cached")
	}
}

func TestScheduleEndpoint_CalendarWindowUsesInjectedClock(t *testing.T) {
	env := newTestEnv(t)

	// No startDate: the fetch window must come from the handler's clock,
	// not the wall clock.
	body := `{"tasks": [{"title": "Floating", "estimatedDuration": 30}], "includeCalendarEvents": true}`
	w, _ := env.post(t, "/api/v1/schedule", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if env.cal.calls != 1 {
		t.Fatalf("calendar called %d times, want 1", env.cal.calls)
	}

	wantMin := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	if !env.cal.lastReq.TimeMin.Equal(wantMin) {
		t.Errorf("TimeMin = %v, want %v", env.cal.lastReq.TimeMin, wantMin)
	}
	if !env.cal.lastReq.TimeMax.Equal(wantMin.AddDate(0, 0, 45)) {
		t.Errorf("TimeMax = %v, want 45 days past the reference", env.cal.lastReq.TimeMax)
	}
}

func TestScheduleEndpoint_CalendarFailureFallsBack(t *testing.T) {
	env := newTestEnv(t)
	env.cal.err = context.DeadlineExceeded

	body := strings.Replace(basicScheduleBody, `"startDate"`, `"includeCalendarEvents": true, "startDate"`, 1)
	w, resp := env.post(t, "/api/v1/schedule", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	schedule := dataOf(t, resp)["schedule"].([]any)
	if len(schedule) != 1 {
		t.Errorf("schedule has %d entries, want 1", len(schedule))
	}
}

func TestFreeWindowsEndpoint_OK(t *testing.T) {
	env := newTestEnv(t)

	body := `{
		"startDate": "2024-05-06",
		"endDate": "2024-05-06",
		"preferences": {
			"workingHours": {"start": "09:00", "end": "17:00"},
			"workingDays": ["monday"]
		},
		"existingEvents": [{
			"title": "Standup",
			"startTime": "2024-05-06T09:00:00Z",
			"endTime": "2024-05-06T10:00:00Z"
		}]
	}`
	w, resp := env.post(t, "/api/v1/schedule/free-windows", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	data := dataOf(t, resp)
	if data["totalWindows"] != float64(1) {
		t.Fatalf("totalWindows = %v, want 1", data["totalWindows"])
	}
	days := data["days"].([]any)
	day := days[0].(map[string]any)
	if day["date"] != "2024-05-06" {
		t.Errorf("date = %v, want 2024-05-06", day["date"])
	}
	window := day["windows"].([]any)[0].(map[string]any)
	if window["start"] != "2024-05-06T10:00:00.000Z" || window["durationMinutes"] != float64(420) {
		t.Errorf("unexpected window: %v", window)
	}
}

func TestFreeWindowsEndpoint_RangeError(t *testing.T) {
	env := newTestEnv(t)

	body := `{"startDate": "2024-05-10", "endDate": "2024-05-06"}`
	w, resp := env.post(t, "/api/v1/schedule/free-windows", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["error_code"] != float64(1) {
		t.Errorf("error_code = %v, want 1", resp["error_code"])
	}
}

func TestValidateEndpoint_OK(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.post(t, "/api/v1/schedule/validate", basicScheduleBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	data := dataOf(t, resp)
	tasks := data["tasks"].([]any)
	if len(tasks) != 1 {
		t.Fatalf("tasks has %d entries, want 1", len(tasks))
	}
	task := tasks[0].(map[string]any)
	if task["id"] == "" || task["id"] == nil {
		t.Errorf("normalized task has no synthesized id")
	}
	if task["priority"] != "medium" {
		t.Errorf("priority = %v, want default medium", task["priority"])
	}
	if data["breakDuration"] != float64(15) {
		t.Errorf("breakDuration = %v, want 15", data["breakDuration"])
	}
}
