package franchises

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
)

type stubRepo struct {
	exists    bool
	existsErr error
	found     *models.Franchise
	findErr   error
	saveErr   error

	saved       []*models.Franchise
	existsCalls int
	findCalls   int
}

func (s *stubRepo) Save(_ context.Context, franchise *models.Franchise) (*models.Franchise, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	if franchise.ID == uuid.Nil {
		franchise.ID = uuid.New()
	}
	s.saved = append(s.saved, franchise)
	return franchise, nil
}

func (s *stubRepo) ExistsByName(_ context.Context, _ string) (bool, error) {
	s.existsCalls++
	return s.exists, s.existsErr
}

func (s *stubRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Franchise, error) {
	s.findCalls++
	return s.found, s.findErr
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestCreateFranchiseSuccess(t *testing.T) {
	repo := &stubRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), "  Burger Planet  ")
	if err != nil {
		t.Fatalf("create franchise: %v", err)
	}
	if dto.Name != "Burger Planet" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}
	if !dto.CreatedAt.Equal(dto.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt on create, got %s != %s", dto.CreatedAt, dto.UpdatedAt)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(repo.saved))
	}
}

func TestCreateFranchiseBlankNameFailsBeforeAnyCall(t *testing.T) {
	repo := &stubRepo{}
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), "   ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.existsCalls != 0 || len(repo.saved) != 0 {
		t.Fatal("expected no downstream calls for invalid input")
	}
}

func TestCreateFranchiseConflictPerformsNoSave(t *testing.T) {
	repo := &stubRepo{exists: true}
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), "Burger Planet")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatal("expected no save on conflict")
	}
}

func TestCreateFranchisePropagatesGatewayFailure(t *testing.T) {
	gatewayErr := pkgerrors.New(pkgerrors.CodeUnavailable, "circuit open")
	repo := &stubRepo{existsErr: gatewayErr}
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), "Burger Planet")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnavailable {
		t.Fatalf("expected gateway failure unchanged, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatal("expected no save after gateway failure")
	}
}

func TestUpdateNameNotFound(t *testing.T) {
	repo := &stubRepo{}
	svc, _ := NewService(repo)

	_, err := svc.UpdateName(context.Background(), uuid.New(), "New Name")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateNameRefreshesUpdatedAt(t *testing.T) {
	existing := &models.Franchise{ID: uuid.New(), Name: "Old"}
	repo := &stubRepo{found: existing}
	svc, _ := NewService(repo)

	dto, err := svc.UpdateName(context.Background(), existing.ID, "  New Name ")
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if dto.Name != "New Name" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if !dto.UpdatedAt.After(dto.CreatedAt) {
		t.Fatal("expected updatedAt refreshed past createdAt")
	}
}

func TestUpdateNameBlankFailsBeforeLookup(t *testing.T) {
	repo := &stubRepo{found: &models.Franchise{ID: uuid.New()}}
	svc, _ := NewService(repo)

	_, err := svc.UpdateName(context.Background(), uuid.New(), "")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.findCalls != 0 {
		t.Fatal("expected lookup to be skipped for invalid input")
	}
}
