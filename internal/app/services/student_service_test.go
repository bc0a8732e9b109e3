package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

func resumeHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "resume.pdf",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
	}
}

func TestUploadResumeRejectsMissingFile(t *testing.T) {
	svc := NewStudentService(nil, nil)

	_, err := svc.UploadResume(context.Background(), "CS2021001", nil)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
}

func TestUploadResumeRejectsUnsupportedType(t *testing.T) {
	svc := NewStudentService(nil, nil)

	_, err := svc.UploadResume(context.Background(), "CS2021001", resumeHeader("image/png", 1024))
	if !errors.Is(err, apperrors.ErrInvalidFileType) {
		t.Errorf("expected ErrInvalidFileType, got %v", err)
	}
}

func TestUploadResumeRejectsOversizedFile(t *testing.T) {
	svc := NewStudentService(nil, nil)

	_, err := svc.UploadResume(context.Background(), "CS2021001", resumeHeader("application/pdf", MaxResumeSize+1))
	if !errors.Is(err, apperrors.ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadResumeAcceptedTypes(t *testing.T) {
	for _, mime := range []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	} {
		if !allowedResumeTypes[mime] {
			t.Errorf("expected %q to be an accepted resume type", mime)
		}
	}
	if allowedResumeTypes["text/html"] {
		t.Error("text/html must not be an accepted resume type")
	}
}

func TestSetResumeLinkRejectsInvalidLink(t *testing.T) {
	svc := NewStudentService(nil, nil)

	for _, link := range []string{"", "   ", "http://example.com/resume.pdf"} {
		if err := svc.SetResumeLink(context.Background(), "CS2021001", link); !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("SetResumeLink(%q): expected ErrBadRequest, got %v", link, err)
		}
	}
}
