package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/sylee999/minifeed/internal/api/middleware"
	"github.com/sylee999/minifeed/internal/core/domain"
	"github.com/sylee999/minifeed/internal/core/ports"
)

type stubAuthService struct {
	token    string
	user     *domain.User
	loginErr error
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) CurrentUser(_ context.Context, userID string) (*domain.User, error) {
	if s.user != nil && s.user.ID == userID {
		return s.user, nil
	}
	return nil, domain.NewAuthenticationError("not logged in")
}

type stubUserService struct {
	signupResult ports.UserMutationResult
}

func (s *stubUserService) Signup(_ context.Context, input ports.SignupInput) ports.UserMutationResult {
	return s.signupResult
}

func (s *stubUserService) Get(_ context.Context, id string) (*domain.User, error) {
	return nil, domain.NewNotFoundError("User", id)
}

func (s *stubUserService) UpdateProfile(_ context.Context, input ports.UpdateProfileInput) ports.UserMutationResult {
	return ports.UserMutationResult{}
}

func (s *stubUserService) DeleteAccount(_ context.Context, userID string) ports.UserMutationResult {
	return ports.UserMutationResult{}
}

func (s *stubUserService) Follow(_ context.Context, targetID, userID string) ports.UserMutationResult {
	return ports.UserMutationResult{}
}

func (s *stubUserService) Unfollow(_ context.Context, targetID, userID string) ports.UserMutationResult {
	return ports.UserMutationResult{}
}

func sessionCookieValue(header http.Header) (string, bool) {
	resp := http.Response{Header: header}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie.Value, true
		}
	}
	return "", false
}

func TestAuthHandlerLoginSetsSessionCookie(t *testing.T) {
	auth := &stubAuthService{
		token: "signed-token",
		user:  &domain.User{ID: "u1", Email: "gopher@example.com"},
	}
	h := NewAuthHandler(auth, &stubUserService{}, time.Hour)

	c, rec := newPostContext(t, http.MethodPost, "/auth/login",
		`{"email":"gopher@example.com","password":"hunter2"}`, "")

	if err := h.Login(c); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	value, ok := sessionCookieValue(rec.Header())
	if !ok {
		t.Fatal("Login() did not set the session cookie")
	}
	if value != "signed-token" {
		t.Errorf("session cookie = %q, want the issued token", value)
	}
}

func TestAuthHandlerLoginFailurePropagates(t *testing.T) {
	auth := &stubAuthService{loginErr: domain.NewAuthenticationError("invalid email or password")}
	h := NewAuthHandler(auth, &stubUserService{}, time.Hour)

	c, rec := newPostContext(t, http.MethodPost, "/auth/login",
		`{"email":"gopher@example.com","password":"wrong"}`, "")

	err := h.Login(c)
	if !domain.IsKind(err, domain.KindAuthentication) {
		t.Fatalf("Login() error = %v, want authentication kind", err)
	}
	if _, ok := sessionCookieValue(rec.Header()); ok {
		t.Error("Login() set a session cookie on failure")
	}
}

func TestAuthHandlerLoginValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubUserService{}, time.Hour)

	c, rec := newPostContext(t, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`, "")
	if err := h.Login(c); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAuthHandlerSignup(t *testing.T) {
	users := &stubUserService{
		signupResult: ports.UserMutationResult{
			Success: true,
			Message: "Account created successfully",
			User:    &domain.User{ID: "u1", Email: "gopher@example.com"},
		},
	}
	auth := &stubAuthService{token: "signed-token", user: users.signupResult.User}
	h := NewAuthHandler(auth, users, time.Hour)

	c, rec := newPostContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Gopher","email":"gopher@example.com","password":"hunter2"}`, "")

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if _, ok := sessionCookieValue(rec.Header()); !ok {
		t.Error("Signup() did not log the new user in")
	}
}

func TestAuthHandlerSignupDuplicateEmail(t *testing.T) {
	users := &stubUserService{
		signupResult: ports.UserMutationResult{Success: false, Message: "Email is already registered"},
	}
	h := NewAuthHandler(&stubAuthService{}, users, time.Hour)

	c, rec := newPostContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Gopher","email":"gopher@example.com","password":"hunter2"}`, "")

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409 for a taken email", rec.Code)
	}
}

func TestAuthHandlerLogoutClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubUserService{}, time.Hour)

	c, rec := newPostContext(t, http.MethodPost, "/auth/logout", "", "u1")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	resp := http.Response{Header: rec.Header()}
	var cleared bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie && cookie.MaxAge < 0 && cookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Logout() did not clear the session cookie")
	}
}
