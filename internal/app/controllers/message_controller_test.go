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

type stubMessageService struct {
	sendFn         func(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error)
	updateStatusFn func(ctx context.Context, id int64, req *dto.UpdateMessageStatusRequest) error
}

func (s *stubMessageService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	return s.sendFn(ctx, req)
}

func (s *stubMessageService) GetAllMessages(context.Context) ([]*models.Message, error) {
	return nil, nil
}

func (s *stubMessageService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateMessageStatusRequest) error {
	return s.updateStatusFn(ctx, id, req)
}

func newMessageRouter(svc *stubMessageService) *gin.Engine {
	controller := NewMessageController(svc)
	router := gin.New()
	router.POST("/messages/send", controller.SendMessage)
	router.PUT("/messages/:id/status", controller.UpdateStatus)
	return router
}

func TestSendMessageSuccess(t *testing.T) {
	svc := &stubMessageService{
		sendFn: func(_ context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
			return &models.Message{
				ID:          1,
				SenderName:  req.SenderName,
				SenderEmail: req.SenderEmail,
				Subject:     req.Subject,
				Body:        req.Body,
				Status:      models.MessageNew,
			}, nil
		},
	}

	w := postJSON(newMessageRouter(svc), "/messages/send",
		`{"sender_name":"Asha","sender_email":"asha@college.edu","subject":"Query","message":"When is the next drive?"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool           `json:"success"`
		Data    models.Message `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Data.Status != models.MessageNew {
		t.Errorf("status = %q, want %q", body.Data.Status, models.MessageNew)
	}
}

func TestSendMessageRejectsBadEmail(t *testing.T) {
	called := false
	svc := &stubMessageService{
		sendFn: func(context.Context, *dto.SendMessageRequest) (*models.Message, error) {
			called = true
			return nil, nil
		},
	}

	w := postJSON(newMessageRouter(svc), "/messages/send",
		`{"sender_name":"Asha","sender_email":"not-an-email","subject":"Query","message":"Hi"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if called {
		t.Error("service must not be called for a malformed submission")
	}
}

func TestUpdateMessageStatus(t *testing.T) {
	var gotID int64
	var gotStatus string
	svc := &stubMessageService{
		updateStatusFn: func(_ context.Context, id int64, req *dto.UpdateMessageStatusRequest) error {
			gotID, gotStatus = id, req.Status
			return nil
		},
	}

	w := putJSON(newMessageRouter(svc), "/messages/4/status", `{"status":"read"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if gotID != 4 || gotStatus != "read" {
		t.Errorf("UpdateStatus called with %d, %q", gotID, gotStatus)
	}
}

func TestUpdateMessageStatusUnknownMessage(t *testing.T) {
	svc := &stubMessageService{
		updateStatusFn: func(context.Context, int64, *dto.UpdateMessageStatusRequest) error {
			return apperrors.ErrMessageNotFound
		},
	}

	w := putJSON(newMessageRouter(svc), "/messages/99/status", `{"status":"read"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateMessageStatusBadID(t *testing.T) {
	svc := &stubMessageService{}

	w := putJSON(newMessageRouter(svc), "/messages/abc/status", `{"status":"read"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
