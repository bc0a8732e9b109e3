package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

type stubAdminService struct {
	changePasswordFn func(ctx context.Context, id int64, req *dto.ChangePasswordRequest) error
	dashboardFn      func(ctx context.Context) (*dto.DashboardStats, error)
}

func (s *stubAdminService) GetAllAdmins(context.Context) ([]*models.Admin, error) { return nil, nil }

func (s *stubAdminService) GetAdmin(context.Context, int64) (*models.Admin, error) {
	return nil, nil
}

func (s *stubAdminService) CreateAdmin(context.Context, *dto.CreateAdminRequest) (*models.Admin, error) {
	return nil, nil
}

func (s *stubAdminService) UpdateAdmin(context.Context, int64, *dto.UpdateAdminRequest) (*models.Admin, error) {
	return nil, nil
}

func (s *stubAdminService) DeleteAdmin(context.Context, int64) error { return nil }

func (s *stubAdminService) ChangePassword(ctx context.Context, id int64, req *dto.ChangePasswordRequest) error {
	return s.changePasswordFn(ctx, id, req)
}

func (s *stubAdminService) TouchLastLogin(context.Context, int64) error { return nil }

func (s *stubAdminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	return s.dashboardFn(ctx)
}

func newAdminRouter(svc *stubAdminService) *gin.Engine {
	controller := NewAdminController(svc)
	router := gin.New()
	router.PUT("/admins/:id/change-password", controller.ChangePassword)
	router.GET("/admins/dashboard/stats", controller.GetDashboardStats)
	return router
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc := &stubAdminService{
		changePasswordFn: func(context.Context, int64, *dto.ChangePasswordRequest) error {
			return apperrors.ErrInvalidCredentials
		},
	}

	w := putJSON(newAdminRouter(svc), "/admins/1/change-password",
		`{"currentPassword":"wrong","newPassword":"fresh-secret"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestChangePasswordBadID(t *testing.T) {
	svc := &stubAdminService{}

	w := putJSON(newAdminRouter(svc), "/admins/abc/change-password",
		`{"currentPassword":"old","newPassword":"fresh-secret"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChangePasswordShortNewPassword(t *testing.T) {
	called := false
	svc := &stubAdminService{
		changePasswordFn: func(context.Context, int64, *dto.ChangePasswordRequest) error {
			called = true
			return nil
		},
	}

	w := putJSON(newAdminRouter(svc), "/admins/1/change-password",
		`{"currentPassword":"old","newPassword":"abc"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if called {
		t.Error("service must not be called for a too-short password")
	}
}

func TestGetDashboardStats(t *testing.T) {
	svc := &stubAdminService{
		dashboardFn: func(context.Context) (*dto.DashboardStats, error) {
			return &dto.DashboardStats{
				Stats: dto.DashboardCounts{
					TotalStudents:     120,
					TotalCompanies:    8,
					UpcomingEvents:    3,
					TotalApplications: 240,
				},
				RecentApplications: []dto.RecentApplication{},
			}, nil
		},
	}

	w := getRequest(newAdminRouter(svc), "/admins/dashboard/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool               `json:"success"`
		Data    dto.DashboardStats `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Data.Stats.TotalStudents != 120 {
		t.Errorf("totalStudents = %d, want 120", body.Data.Stats.TotalStudents)
	}
	if body.Data.Stats.UpcomingEvents != 3 {
		t.Errorf("upcomingEvents = %d, want 3", body.Data.Stats.UpcomingEvents)
	}
}
