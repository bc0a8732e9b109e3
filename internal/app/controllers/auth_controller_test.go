package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthService struct {
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	registerFn func(ctx context.Context, req *dto.RegisterStudentRequest) error
	forgotFn   func(ctx context.Context, userID string) error
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, userID string) error {
	return s.forgotFn(ctx, userID)
}

func postJSON(router *gin.Engine, path string, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	controller := NewAuthController(svc, zerolog.Nop())
	router := gin.New()
	router.POST("/login", controller.Login)
	router.POST("/register", controller.Register)
	router.POST("/forgot-password", controller.ForgotPassword)
	return router
}

func TestLoginSuccess(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return &dto.AuthResponse{
				Token: dto.TokenResponse{AccessToken: "signed-token", TokenType: "Bearer", ExpiresIn: 3600},
				User:  dto.StudentProfile{AdmissionNumber: req.UserID},
			}, nil
		},
	}

	w := postJSON(newAuthRouter(svc), "/login",
		`{"userId":"CS2021001","password":"campus@123","role":"student"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token dto.TokenResponse `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !body.Success {
		t.Error("expected success=true")
	}
	if body.Data.Token.AccessToken != "signed-token" {
		t.Errorf("accessToken = %q", body.Data.Token.AccessToken)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, apperrors.ErrInvalidCredentials
		},
	}

	w := postJSON(newAuthRouter(svc), "/login",
		`{"userId":"CS2021001","password":"wrong","role":"student"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Error.Code != dto.ErrorCodeInvalidCredentials {
		t.Errorf("error code = %s, want %s", body.Error.Code, dto.ErrorCodeInvalidCredentials)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}

	w := postJSON(newAuthRouter(svc), "/login",
		`{"userId":"GHOST001","password":"whatever","role":"student"}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	called := false
	svc := &stubAuthService{
		loginFn: func(context.Context, *dto.LoginRequest) (*dto.AuthResponse, error) {
			called = true
			return nil, nil
		},
	}

	w := postJSON(newAuthRouter(svc), "/login",
		`{"userId":"CS2021001","password":"campus@123","role":"teacher"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if called {
		t.Error("service must not be called for an unknown role")
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	svc := &stubAuthService{}

	w := postJSON(newAuthRouter(svc), "/login", `{"userId":"CS2021001"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(context.Context, *dto.RegisterStudentRequest) error { return nil },
	}

	w := postJSON(newAuthRouter(svc), "/register",
		`{"studentAdmissionNumber":"CS2021001","studentFirstName":"Asha"}`)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
}

func TestRegisterDuplicateAdmissionNumber(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(context.Context, *dto.RegisterStudentRequest) error {
			return apperrors.ErrStudentAlreadyExists
		},
	}

	w := postJSON(newAuthRouter(svc), "/register",
		`{"studentAdmissionNumber":"CS2021001","studentFirstName":"Asha"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Error.Code != dto.ErrorCodeResourceAlreadyExists {
		t.Errorf("error code = %s, want %s", body.Error.Code, dto.ErrorCodeResourceAlreadyExists)
	}
}

func TestForgotPasswordAlwaysGeneric(t *testing.T) {
	svc := &stubAuthService{
		forgotFn: func(context.Context, string) error { return nil },
	}

	w := postJSON(newAuthRouter(svc), "/forgot-password", `{"userId":"CS2021001"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Message != "If the account exists, reset instructions will be sent" {
		t.Errorf("message = %q", body.Message)
	}
}
