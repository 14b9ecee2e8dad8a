package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/khaild19/10AI/internal/consts"
	"github.com/khaild19/10AI/internal/testutils"
	"github.com/khaild19/10AI/internal/utils"

	"github.com/gin-gonic/gin"
)

func TestRegisterHandler(t *testing.T) {
	f := setupHandler(t)
	r := gin.New()
	r.POST("/register", f.h.Register)

	w := doJSON(r, http.MethodPost, "/register", gin.H{"username": "alice", "email": "alice@example.com", "password": "Password123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), consts.TokenCookieName+"=") {
		t.Fatalf("expected token cookie, got %q", w.Header().Get("Set-Cookie"))
	}

	w = doJSON(r, http.MethodPost, "/register", gin.H{"username": "alice", "email": "other@example.com", "password": "Password123"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/register", gin.H{"username": "bob"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestLoginHandler_SuccessAndUnauthorized(t *testing.T) {
	f := setupHandler(t)
	testutils.CreateUser(t, f.gdb, "alice")

	r := gin.New()
	r.POST("/login", f.h.Login)

	w := doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": testutils.DefaultPassword})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var okResp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, w, &okResp)
	if _, err := utils.ParseLoginToken(okResp.Token); err != nil {
		t.Fatalf("token parse failed: %v", err)
	}
	if okResp.User.Username != "alice" {
		t.Fatalf("unexpected user payload: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/login", gin.H{"username": "alice", "password": "wrongpass1"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/login", gin.H{"username": "10AI", "password": "10AI"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown account, got %d", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	f := setupHandler(t)
	r := gin.New()
	r.POST("/logout", f.h.Logout)

	w := doJSON(r, http.MethodPost, "/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Fatalf("expected expired cookie, got %q", w.Header().Get("Set-Cookie"))
	}
}

func TestCurrentUserHandler(t *testing.T) {
	f := setupHandler(t)
	u := testutils.CreateUser(t, f.gdb, "alice")

	anon := gin.New()
	anon.GET("/me", f.h.CurrentUser)
	w := doJSON(anon, http.MethodGet, "/me", nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `{"user":null}` {
		t.Fatalf("expected null user, got %d %s", w.Code, w.Body.String())
	}

	authed := gin.New()
	authed.GET("/me", asUser(u.ID), f.h.CurrentUser)
	w = doJSON(authed, http.MethodGet, "/me", nil)
	var resp struct {
		User struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	if resp.User.ID != u.ID || resp.User.Username != "alice" {
		t.Fatalf("unexpected current user: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("password hash must not be exposed: %s", w.Body.String())
	}
}
