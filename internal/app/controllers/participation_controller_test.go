package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

type stubParticipationService struct {
	registerFn     func(ctx context.Context, req *dto.RegisterParticipationRequest) (*models.Participation, error)
	updateStatusFn func(ctx context.Context, admissionNumber string, eventID int64, req *dto.UpdateParticipationRequest) (*models.Participation, error)
	withdrawFn     func(ctx context.Context, admissionNumber string, eventID int64) error
}

func (s *stubParticipationService) Register(ctx context.Context, req *dto.RegisterParticipationRequest) (*models.Participation, error) {
	return s.registerFn(ctx, req)
}

func (s *stubParticipationService) GetByStudent(context.Context, string) ([]*dto.StudentParticipation, error) {
	return nil, nil
}

func (s *stubParticipationService) GetByEvent(context.Context, int64) ([]*dto.EventParticipation, error) {
	return nil, nil
}

func (s *stubParticipationService) GetAll(context.Context) ([]*dto.FullParticipation, error) {
	return nil, nil
}

func (s *stubParticipationService) UpdateStatus(ctx context.Context, admissionNumber string, eventID int64, req *dto.UpdateParticipationRequest) (*models.Participation, error) {
	return s.updateStatusFn(ctx, admissionNumber, eventID, req)
}

func (s *stubParticipationService) Withdraw(ctx context.Context, admissionNumber string, eventID int64) error {
	return s.withdrawFn(ctx, admissionNumber, eventID)
}

func putJSON(router *gin.Engine, path string, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("PUT", path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newParticipationRouter(svc *stubParticipationService) *gin.Engine {
	controller := NewParticipationController(svc)
	router := gin.New()
	router.POST("/participation/register", controller.Register)
	router.PUT("/participation/:studentId/:eventId", controller.UpdateStatus)
	router.DELETE("/participation/:studentId/:eventId", controller.Withdraw)
	return router
}

func TestRegisterParticipationSuccess(t *testing.T) {
	svc := &stubParticipationService{
		registerFn: func(_ context.Context, req *dto.RegisterParticipationRequest) (*models.Participation, error) {
			return &models.Participation{
				StudentAdmissionNumber: req.StudentAdmissionNumber,
				EventID:                req.EventID,
				Status:                 models.ParticipationRegistered,
			}, nil
		},
	}

	w := postJSON(newParticipationRouter(svc), "/participation/register",
		`{"studentAdmissionNumber":"CS2021001","eventId":7}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool                 `json:"success"`
		Data    models.Participation `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Data.Status != models.ParticipationRegistered {
		t.Errorf("status = %q, want %q", body.Data.Status, models.ParticipationRegistered)
	}
}

func TestRegisterParticipationDuplicate(t *testing.T) {
	svc := &stubParticipationService{
		registerFn: func(context.Context, *dto.RegisterParticipationRequest) (*models.Participation, error) {
			return nil, apperrors.ErrAlreadyRegistered
		},
	}

	w := postJSON(newParticipationRouter(svc), "/participation/register",
		`{"studentAdmissionNumber":"CS2021001","eventId":7}`)

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

func TestRegisterParticipationClosedEvent(t *testing.T) {
	svc := &stubParticipationService{
		registerFn: func(context.Context, *dto.RegisterParticipationRequest) (*models.Participation, error) {
			return nil, apperrors.ErrEventNotOpen
		},
	}

	w := postJSON(newParticipationRouter(svc), "/participation/register",
		`{"studentAdmissionNumber":"CS2021001","eventId":7}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegisterParticipationMissingFields(t *testing.T) {
	svc := &stubParticipationService{}

	w := postJSON(newParticipationRouter(svc), "/participation/register",
		`{"studentAdmissionNumber":"CS2021001"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateParticipationStatusBadEventID(t *testing.T) {
	svc := &stubParticipationService{}
	router := newParticipationRouter(svc)

	req := httptest.NewRequest("PUT", "/participation/CS2021001/abc",
		nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateParticipationStatusBlockedTransition(t *testing.T) {
	svc := &stubParticipationService{
		updateStatusFn: func(context.Context, string, int64, *dto.UpdateParticipationRequest) (*models.Participation, error) {
			return nil, apperrors.ErrInvalidStatusTransition
		},
	}

	w := putJSON(newParticipationRouter(svc), "/participation/CS2021001/7",
		`{"status":"REGISTERED"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestWithdrawParticipation(t *testing.T) {
	var gotStudent string
	var gotEvent int64
	svc := &stubParticipationService{
		withdrawFn: func(_ context.Context, admissionNumber string, eventID int64) error {
			gotStudent, gotEvent = admissionNumber, eventID
			return nil
		},
	}

	router := newParticipationRouter(svc)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/participation/CS2021001/7", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotStudent != "CS2021001" || gotEvent != 7 {
		t.Errorf("withdraw called with %q, %d", gotStudent, gotEvent)
	}
}
