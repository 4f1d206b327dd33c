package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	favdomain "github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/internal/user/repository"
	"github.com/tair/starwars-api/pkg/auth"
)

func newTestServer(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.User{}, &favdomain.Favorite{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	handler := NewUserHandler(repository.NewGormUserRepository(db))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, sqlDB)
	return router, db
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, "POST", "/auth/register", map[string]string{
		"username": "luke", "password": "secret",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["username"] != "luke" {
		t.Errorf("expected username luke, got %v", got["username"])
	}
	if _, leaked := got["Password"]; leaked {
		t.Error("password hash must not be serialized")
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, "POST", "/auth/register", map[string]string{"username": "luke"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	doJSON(t, router, "POST", "/auth/register", map[string]string{
		"username": "luke", "password": "secret",
	})

	rec := doJSON(t, router, "POST", "/auth/login", map[string]string{
		"username": "luke", "password": "secret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := auth.ValidateToken(got.Token); err != nil {
		t.Errorf("issued token does not validate: %v", err)
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	router, _ := newTestServer(t)

	doJSON(t, router, "POST", "/auth/register", map[string]string{
		"username": "luke", "password": "secret",
	})

	rec := doJSON(t, router, "POST", "/auth/login", map[string]string{
		"username": "luke", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestListUsersEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	doJSON(t, router, "POST", "/auth/register", map[string]string{
		"username": "luke", "password": "secret",
	})

	rec := doJSON(t, router, "GET", "/users", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 user, got %d", len(got))
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["status"] != "healthy" {
		t.Errorf("expected healthy status, got %q", got["status"])
	}
}

func TestAuthMiddleware(t *testing.T) {
	protected := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		id, ok := ActorID(r)
		if !ok {
			t.Error("expected an actor id in context")
		}
		if id != 42 {
			t.Errorf("expected actor 42, got %d", id)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	rec := httptest.NewRecorder()
	protected(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header: expected 401, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	protected(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: expected 401, got %d", rec.Code)
	}

	token, err := auth.GenerateToken(42, "leia", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	protected(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("valid token: expected 204, got %d", rec.Code)
	}
}
