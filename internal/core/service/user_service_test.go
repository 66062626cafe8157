package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

type stubFileStore struct {
	saved map[string][]byte
	err   error
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{saved: make(map[string][]byte)}
}

func (s *stubFileStore) Save(_ context.Context, name string, content io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.saved[name] = data
	return "uploads/" + name, nil
}

func seedUser(t *testing.T, repo *stubUserRepo) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Name:      "Alice",
		Email:     "alice@example.com",
		SavedJobs: []domain.SavedJob{},
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	svc := NewUserService(repo, newStubFileStore(), zerolog.Nop())

	name := "Alice Smith"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Alice Smith" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("email should be untouched, got %q", updated.Email)
	}

	prefs := domain.Preferences{Location: "Europe", JobType: "full_time"}
	updated, err = svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdate{Preferences: &prefs})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Alice Smith" {
		t.Fatalf("name should survive the preferences update, got %q", updated.Name)
	}
	if updated.Preferences.Location != "Europe" {
		t.Fatalf("preferences not updated: %+v", updated.Preferences)
	}
}

func TestUserService_UpdateProfile_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	svc := NewUserService(repo, newStubFileStore(), zerolog.Nop())

	email := "  Alice.New@Example.COM "
	updated, err := svc.UpdateProfile(context.Background(), user.ID, ports.ProfileUpdate{Email: &email})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Email != "alice.new@example.com" {
		t.Fatalf("expected normalized email, got %q", updated.Email)
	}
}

func TestUserService_AttachResume_Accepted(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	files := newStubFileStore()
	svc := NewUserService(repo, files, zerolog.Nop())

	resume, err := svc.AttachResume(context.Background(), user.ID, ports.ResumeUpload{
		Filename: "cv.pdf",
		Size:     1024,
		Content:  strings.NewReader("%PDF-1.4"),
	})
	if err != nil {
		t.Fatalf("AttachResume returned error: %v", err)
	}
	if resume.Filename != "cv.pdf" {
		t.Fatalf("unexpected filename: %q", resume.Filename)
	}
	if resume.Path == "" {
		t.Fatalf("expected stored path")
	}
	if len(files.saved) != 1 {
		t.Fatalf("expected one stored file, got %d", len(files.saved))
	}

	stored, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if stored.Resume == nil || stored.Resume.Path != resume.Path {
		t.Fatalf("resume metadata not persisted: %+v", stored.Resume)
	}
}

func TestUserService_AttachResume_RejectsExtension(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	files := newStubFileStore()
	svc := NewUserService(repo, files, zerolog.Nop())

	_, err := svc.AttachResume(context.Background(), user.ID, ports.ResumeUpload{
		Filename: "malware.exe",
		Size:     100,
		Content:  bytes.NewReader([]byte("MZ")),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(files.saved) != 0 {
		t.Fatalf("rejected file must not reach storage")
	}
}

func TestUserService_AttachResume_RejectsOversize(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	svc := NewUserService(repo, newStubFileStore(), zerolog.Nop())

	_, err := svc.AttachResume(context.Background(), user.ID, ports.ResumeUpload{
		Filename: "cv.pdf",
		Size:     6 << 20, // 6 MiB, over the 5 MiB ceiling
		Content:  strings.NewReader("%PDF-1.4"),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_AttachResume_ReplacesPrevious(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	svc := NewUserService(repo, newStubFileStore(), zerolog.Nop())

	first, err := svc.AttachResume(context.Background(), user.ID, ports.ResumeUpload{
		Filename: "old.doc", Size: 10, Content: strings.NewReader("old"),
	})
	if err != nil {
		t.Fatalf("first attach: %v", err)
	}

	second, err := svc.AttachResume(context.Background(), user.ID, ports.ResumeUpload{
		Filename: "new.docx", Size: 10, Content: strings.NewReader("new"),
	})
	if err != nil {
		t.Fatalf("second attach: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.Resume.Filename != "new.docx" {
		t.Fatalf("expected wholesale replacement, got %+v", stored.Resume)
	}
	if first.Path == second.Path {
		t.Fatalf("expected distinct stored paths")
	}
}
