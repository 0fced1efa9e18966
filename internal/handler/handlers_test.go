package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fitrack/exercise-tracker/internal/config"
	"github.com/fitrack/exercise-tracker/internal/handler"
	"github.com/fitrack/exercise-tracker/internal/middleware"
	"github.com/fitrack/exercise-tracker/internal/model"
	"github.com/fitrack/exercise-tracker/internal/repository"
	"github.com/fitrack/exercise-tracker/internal/router"
	"github.com/fitrack/exercise-tracker/internal/server"
	"github.com/fitrack/exercise-tracker/internal/service"
)

// The tests below drive the full HTTP stack (router, middleware chain,
// handlers, services) against in-memory stores, asserting on the exact
// wire shapes clients depend on.

type memUsers struct {
	users []model.User
}

func (m *memUsers) Create(_ context.Context, username string) (*model.User, error) {
	user := model.User{
		ID:       fmt.Sprintf("00000000-0000-0000-0000-%012d", len(m.users)+1),
		Username: username,
	}
	m.users = append(m.users, user)
	return &user, nil
}

func (m *memUsers) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.users))
	out = append(out, m.users...)
	return out, nil
}

func (m *memUsers) Get(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memExercises struct {
	created []model.Exercise
}

func (m *memExercises) Create(_ context.Context, username, description string, duration int, date string) (*model.Exercise, error) {
	exercise := model.Exercise{
		ID:          fmt.Sprintf("11111111-0000-0000-0000-%012d", len(m.created)+1),
		Username:    username,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	m.created = append(m.created, exercise)
	return &exercise, nil
}

type memLogs struct {
	logs map[string]*model.Log
}

func (m *memLogs) Get(_ context.Context, id string) (*model.Log, error) {
	log, ok := m.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *log
	copied.Entries = append([]model.LogEntry(nil), log.Entries...)
	return &copied, nil
}

func (m *memLogs) Append(_ context.Context, userID, username string, entry model.LogEntry) error {
	log, ok := m.logs[userID]
	if !ok {
		log = &model.Log{ID: userID, Username: username}
		m.logs[userID] = log
	}
	log.Entries = append(log.Entries, entry)
	log.Count++
	return nil
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	nop := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "3000",
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	s := &server.Server{
		Config: cfg,
		Logger: &nop,
	}

	repos := &repository.Repositories{
		Users:     &memUsers{},
		Exercises: &memExercises{},
		Logs:      &memLogs{logs: make(map[string]*model.Log)},
	}

	services, err := service.NewServices(s, repos)
	if err != nil {
		t.Fatalf("build services: %v", err)
	}

	return router.New(handler.NewHandlers(s, services), middleware.NewMiddlewares(s))
}

func postForm(t *testing.T, e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func createUser(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()
	rec := postForm(t, e, "/api/users", url.Values{"username": {username}})
	if rec.Code != http.StatusOK {
		t.Fatalf("create user: status %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	decode(t, rec, &body)
	id, _ := body["_id"].(string)
	if id == "" {
		t.Fatalf("create user response missing _id: %s", rec.Body.String())
	}
	return id
}

func TestCreateUserResponseShape(t *testing.T) {
	e := newTestRouter(t)

	rec := postForm(t, e, "/api/users", url.Values{"username": {"alice"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	decode(t, rec, &body)
	if body["username"] != "alice" {
		t.Fatalf("want username alice, got %v", body["username"])
	}
	if id, _ := body["_id"].(string); id == "" {
		t.Fatalf("response must carry _id, got %s", rec.Body.String())
	}
	if _, exists := body["count"]; exists {
		t.Fatalf("user response must not carry log fields: %s", rec.Body.String())
	}
}

func TestCreateUserMissingUsername(t *testing.T) {
	e := newTestRouter(t)

	rec := postForm(t, e, "/api/users", url.Values{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestListUsers(t *testing.T) {
	e := newTestRouter(t)

	rec := get(t, e, "/api/users")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if strings.TrimSpace(rec.Body.String()) == "null" {
		t.Fatal("empty listing must serialize as [], not null")
	}

	createUser(t, e, "alice")
	createUser(t, e, "alice")

	rec = get(t, e, "/api/users")
	var users []map[string]any
	decode(t, rec, &users)
	if len(users) != 2 {
		t.Fatalf("want 2 users, got %d", len(users))
	}
	if users[0]["_id"] == users[1]["_id"] {
		t.Fatal("duplicate usernames must still get distinct ids")
	}
}

func TestLogExerciseResponseShape(t *testing.T) {
	e := newTestRouter(t)
	id := createUser(t, e, "alice")

	rec := postForm(t, e, "/api/users/"+id+"/exercises", url.Values{
		"description": {"running"},
		"duration":    {"25"},
		"date":        {"1990-01-01"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	decode(t, rec, &body)
	if body["_id"] != id {
		t.Fatalf("response _id must echo the user id %q, got %v", id, body["_id"])
	}
	if body["username"] != "alice" || body["description"] != "running" {
		t.Fatalf("unexpected fields: %s", rec.Body.String())
	}
	if body["duration"] != float64(25) {
		t.Fatalf("duration must serialize as a number, got %v", body["duration"])
	}
	if body["date"] != "Mon Jan 01 1990" {
		t.Fatalf("want date %q, got %v", "Mon Jan 01 1990", body["date"])
	}
}

func TestLogExerciseInvalidDateFallsBackToToday(t *testing.T) {
	e := newTestRouter(t)
	id := createUser(t, e, "alice")

	before := service.FormatDate(time.Now())
	rec := postForm(t, e, "/api/users/"+id+"/exercises", url.Values{
		"description": {"running"},
		"duration":    {"25"},
		"date":        {"banana"},
	})
	after := service.FormatDate(time.Now())

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	decode(t, rec, &body)
	date, _ := body["date"].(string)
	if date != before && date != after {
		t.Fatalf("want today's date %q, got %q", before, date)
	}
}

func TestLogExerciseUnknownUser(t *testing.T) {
	e := newTestRouter(t)

	rec := postForm(t, e, "/api/users/ffffffff-ffff-ffff-ffff-ffffffffffff/exercises", url.Values{
		"description": {"running"},
		"duration":    {"25"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown user reports as 200 with an error body, got %d", rec.Code)
	}

	var body map[string]string
	decode(t, rec, &body)
	if body["error"] != "No user found with the specified user ID." {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}

func TestLogExerciseValidation(t *testing.T) {
	e := newTestRouter(t)
	id := createUser(t, e, "alice")

	cases := []struct {
		name string
		form url.Values
	}{
		{"missing description", url.Values{"duration": {"25"}}},
		{"missing duration", url.Values{"description": {"running"}}},
		{"zero duration", url.Values{"description": {"running"}, "duration": {"0"}}},
		{"negative duration", url.Values{"description": {"running"}, "duration": {"-5"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postForm(t, e, "/api/users/"+id+"/exercises", tc.form)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d, body %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetLogs(t *testing.T) {
	e := newTestRouter(t)
	id := createUser(t, e, "alice")

	for _, day := range []string{"1990-01-01", "1990-01-02", "1990-01-03"} {
		rec := postForm(t, e, "/api/users/"+id+"/exercises", url.Values{
			"description": {"run " + day},
			"duration":    {"20"},
			"date":        {day},
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("seed exercise %s: status %d", day, rec.Code)
		}
	}

	rec := get(t, e, "/api/users/"+id+"/logs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var log struct {
		ID       string           `json:"_id"`
		Username string           `json:"username"`
		Count    int              `json:"count"`
		Entries  []model.LogEntry `json:"log"`
	}
	decode(t, rec, &log)

	if log.ID != id || log.Username != "alice" {
		t.Fatalf("unexpected identity fields: %s", rec.Body.String())
	}
	if log.Count != 3 || len(log.Entries) != 3 {
		t.Fatalf("want count 3 with 3 entries, got count %d with %d", log.Count, len(log.Entries))
	}
	if log.Entries[0].Date != "Mon Jan 01 1990" {
		t.Fatalf("entries must keep append order, got first date %q", log.Entries[0].Date)
	}
}

func TestGetLogsFiltered(t *testing.T) {
	e := newTestRouter(t)
	id := createUser(t, e, "alice")

	for _, day := range []string{"1990-01-01", "1990-01-02", "1990-01-03"} {
		postForm(t, e, "/api/users/"+id+"/exercises", url.Values{
			"description": {"run"},
			"duration":    {"20"},
			"date":        {day},
		})
	}

	var log struct {
		Count   int              `json:"count"`
		Entries []model.LogEntry `json:"log"`
	}

	rec := get(t, e, "/api/users/"+id+"/logs?from=1990-01-02&to=1990-01-03")
	decode(t, rec, &log)
	if log.Count != 1 || len(log.Entries) != 1 {
		t.Fatalf("from inclusive, to exclusive: want exactly 1 entry, got %s", rec.Body.String())
	}
	if log.Entries[0].Date != "Tue Jan 02 1990" {
		t.Fatalf("want the Jan 02 entry, got %q", log.Entries[0].Date)
	}

	rec = get(t, e, "/api/users/"+id+"/logs?limit=2")
	decode(t, rec, &log)
	if log.Count != 2 || len(log.Entries) != 2 {
		t.Fatalf("limit: want 2 entries, got %s", rec.Body.String())
	}
	if log.Entries[0].Date != "Mon Jan 01 1990" {
		t.Fatalf("limit must keep the first entries, got %q", log.Entries[0].Date)
	}

	rec = get(t, e, "/api/users/"+id+"/logs?from=banana")
	decode(t, rec, &log)
	if log.Count != 0 || len(log.Entries) != 0 {
		t.Fatalf("invalid bound must match nothing, got %s", rec.Body.String())
	}
}

func TestGetLogsUnknownUser(t *testing.T) {
	e := newTestRouter(t)

	rec := get(t, e, "/api/users/ffffffff-ffff-ffff-ffff-ffffffffffff/logs")
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown user reports as 200 with an error body, got %d", rec.Code)
	}

	var body map[string]string
	decode(t, rec, &body)
	if body["error"] != "No log found for the specified user ID." {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := get(t, e, "/api/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}

	var body map[string]any
	decode(t, rec, &body)
	if body["message"] != "Route not found" {
		t.Fatalf("unexpected 404 body: %s", rec.Body.String())
	}
}
