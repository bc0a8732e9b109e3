package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/auth"
)

func newProtectedRouter(t *testing.T, exp time.Duration, roles ...models.Role) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "placement-portal-test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	group := router.Group("/", authMiddleware.JWTAuth())
	if len(roles) > 0 {
		group.Use(authMiddleware.RoleRequired(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Error == nil {
		t.Fatal("expected an error detail")
	}
	return body.Error.Code
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newProtectedRouter(t, time.Hour)

	w := doRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := decodeErrorCode(t, w); code != dto.ErrorCodeUnauthorized {
		t.Errorf("error code = %s, want %s", code, dto.ErrorCodeUnauthorized)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := newProtectedRouter(t, time.Hour)

	token, _, err := jwtService.GenerateToken("CS2021001", "asha@college.edu", "Asha Patel", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["userID"] != "CS2021001" {
		t.Errorf("userID = %q, want CS2021001", body["userID"])
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, jwtService := newProtectedRouter(t, -time.Minute)

	token, _, err := jwtService.GenerateToken("CS2021001", "asha@college.edu", "Asha Patel", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := decodeErrorCode(t, w); code != dto.ErrorCodeExpiredToken {
		t.Errorf("error code = %s, want %s", code, dto.ErrorCodeExpiredToken)
	}
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _ := newProtectedRouter(t, time.Hour)

	w := doRequest(router, "not.a.token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := decodeErrorCode(t, w); code != dto.ErrorCodeInvalidToken {
		t.Errorf("error code = %s, want %s", code, dto.ErrorCodeInvalidToken)
	}
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newProtectedRouter(t, time.Hour, models.RoleAdmin)

	adminToken, _, err := jwtService.GenerateToken("1", "admin@placement.portal", "Placement Admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := doRequest(router, adminToken); w.Code != http.StatusOK {
		t.Errorf("admin request status = %d, want 200", w.Code)
	}

	studentToken, _, err := jwtService.GenerateToken("CS2021001", "asha@college.edu", "Asha Patel", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := doRequest(router, studentToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("student request status = %d, want 403", w.Code)
	}
	if code := decodeErrorCode(t, w); code != dto.ErrorCodeForbidden {
		t.Errorf("error code = %s, want %s", code, dto.ErrorCodeForbidden)
	}
}
