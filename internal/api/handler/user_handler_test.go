package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

type stubUserService struct {
	user   *domain.User
	resume *domain.Resume
	err    error

	gotUserID string
	gotUpdate ports.ProfileUpdate
	gotUpload ports.ResumeUpload
}

func (s *stubUserService) Profile(_ context.Context, userID string) (*domain.User, error) {
	s.gotUserID = userID
	return s.user, s.err
}

func (s *stubUserService) UpdateProfile(_ context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	s.gotUserID = userID
	s.gotUpdate = update
	return s.user, s.err
}

func (s *stubUserService) AttachResume(_ context.Context, userID string, upload ports.ResumeUpload) (*domain.Resume, error) {
	s.gotUserID = userID
	s.gotUpload = upload
	if s.err != nil {
		return nil, s.err
	}
	return s.resume, nil
}

func multipartContext(t *testing.T, field, filename, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.WriteString(part, content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/user/resume", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Profile(t *testing.T) {
	svc := &stubUserService{
		user: &domain.User{
			ID:        "user_1",
			Name:      "Alice",
			Email:     "alice@example.com",
			SavedJobs: []domain.SavedJob{{JobID: "42"}},
		},
	}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/api/user/profile", "")
	withUser(c, &domain.User{ID: "user_1"})

	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotUserID != "user_1" {
		t.Fatalf("handler must use the authenticated identity, got %q", svc.gotUserID)
	}

	var resp struct {
		User struct {
			SavedJobs []domain.SavedJob `json:"savedJobs"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.User.SavedJobs) != 1 || resp.User.SavedJobs[0].JobID != "42" {
		t.Fatalf("saved jobs missing from profile: %s", rec.Body.String())
	}
}

func TestUserHandler_UpdateProfile_PartialFields(t *testing.T) {
	svc := &stubUserService{user: &domain.User{ID: "user_1", Name: "Alice Smith"}}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(t, http.MethodPut, "/api/user/profile", `{"name":"Alice Smith"}`)
	withUser(c, &domain.User{ID: "user_1"})

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotUpdate.Name == nil || *svc.gotUpdate.Name != "Alice Smith" {
		t.Fatalf("name not forwarded: %+v", svc.gotUpdate)
	}
	// Absent fields stay nil so the service leaves them untouched.
	if svc.gotUpdate.Email != nil || svc.gotUpdate.Preferences != nil {
		t.Fatalf("absent fields must stay nil: %+v", svc.gotUpdate)
	}
}

func TestUserHandler_UpdateProfile_Preferences(t *testing.T) {
	svc := &stubUserService{user: &domain.User{ID: "user_1"}}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(t, http.MethodPut, "/api/user/profile",
		`{"preferences":{"location":"Europe","job_type":"full_time","notify_cadence":"weekly"}}`)
	withUser(c, &domain.User{ID: "user_1"})

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	prefs := svc.gotUpdate.Preferences
	if prefs == nil || prefs.Location != "Europe" || prefs.JobType != "full_time" {
		t.Fatalf("preferences not forwarded: %+v", prefs)
	}
	// Keys outside the typed set ride along in Extra.
	if prefs.Extra["notify_cadence"] != "weekly" {
		t.Fatalf("extra preference key dropped: %+v", prefs.Extra)
	}
}

func TestUserHandler_UploadResume(t *testing.T) {
	svc := &stubUserService{
		resume: &domain.Resume{Filename: "cv.pdf", Path: "uploads/user_1-1.pdf"},
	}
	h := NewUserHandler(svc)

	c, rec := multipartContext(t, "resume", "cv.pdf", "%PDF-1.4 content")
	withUser(c, &domain.User{ID: "user_1"})

	if err := h.UploadResume(c); err != nil {
		t.Fatalf("UploadResume returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotUpload.Filename != "cv.pdf" {
		t.Fatalf("filename not forwarded: %q", svc.gotUpload.Filename)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Resume uploaded successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestUserHandler_UploadResume_NoFile(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := multipartContext(t, "", "", "")
	withUser(c, &domain.User{ID: "user_1"})

	err := h.UploadResume(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if httpErr.Message != "No file uploaded" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestUserHandler_UploadResume_ServiceRejection(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrInvalidInput})

	c, _ := multipartContext(t, "resume", "malware.exe", "MZ")
	withUser(c, &domain.User{ID: "user_1"})

	if err := h.UploadResume(c); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput passthrough, got %v", err)
	}
}
