package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := NewService(cfg, nil)

	router := gin.New()
	router.POST("/auth/login", svc.LoginHandler)
	router.POST("/auth/logout", svc.LogoutHandler)

	admin := router.Group("/admin")
	admin.Use(svc.Middleware())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func login(t *testing.T, router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	router := newAuthRouter(Config{Username: "admin", Password: "s3cret"})

	rec := login(t, router, "admin", "s3cret")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatal("login did not set the session cookie")
	}

	// Cookie grants access to admin routes.
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin route with cookie status = %d", rec.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := newAuthRouter(Config{Username: "admin", Password: "s3cret"})

	if rec := login(t, router, "admin", "wrong"); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", rec.Code)
	}
}

func TestLoginUnconfiguredCredentials(t *testing.T) {
	router := newAuthRouter(Config{})

	if rec := login(t, router, "admin", "s3cret"); rec.Code != http.StatusInternalServerError {
		t.Errorf("unconfigured login status = %d, want 500", rec.Code)
	}
}

func TestMiddlewareRejectsMissingAndBogusCookie(t *testing.T) {
	router := newAuthRouter(Config{Username: "admin", Password: "s3cret"})

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing cookie status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "forged"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("forged cookie status = %d, want 401", rec.Code)
	}
}
