package branches

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/smoralesdev/franchise-backend/pkg/db/models"
	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
)

type stubRepo struct {
	found   *models.Branch
	findErr error
	saveErr error

	saved []*models.Branch
}

func (s *stubRepo) Save(_ context.Context, branch *models.Branch) (*models.Branch, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	s.saved = append(s.saved, branch)
	return branch, nil
}

func (s *stubRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Branch, error) {
	return s.found, s.findErr
}

type stubFranchiseLoader struct {
	found   *models.Franchise
	findErr error
}

func (s *stubFranchiseLoader) FindByID(_ context.Context, _ uuid.UUID) (*models.Franchise, error) {
	return s.found, s.findErr
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	if _, err := NewService(nil, &stubFranchiseLoader{}); err == nil {
		t.Fatal("expected error creating service without repo")
	}
	if _, err := NewService(&stubRepo{}, nil); err == nil {
		t.Fatal("expected error creating service without franchise loader")
	}
}

func TestCreateBranchSuccess(t *testing.T) {
	franchise := &models.Franchise{ID: uuid.New(), Name: "Burger Planet"}
	repo := &stubRepo{}
	svc, err := NewService(repo, &stubFranchiseLoader{found: franchise})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateBranchInput{
		Name:        "  Downtown  ",
		FranchiseID: franchise.ID,
	})
	if err != nil {
		t.Fatalf("create branch: %v", err)
	}
	if dto.Name != "Downtown" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.FranchiseID != franchise.ID {
		t.Fatal("expected branch linked to franchise")
	}
	if !dto.CreatedAt.Equal(dto.UpdatedAt) {
		t.Fatal("expected createdAt == updatedAt on create")
	}
}

func TestCreateBranchMissingFranchisePreemptsEverything(t *testing.T) {
	repo := &stubRepo{}
	svc, _ := NewService(repo, &stubFranchiseLoader{})

	// The franchise check runs first, so even a blank name reports the
	// missing franchise rather than a payload problem.
	_, err := svc.Create(context.Background(), CreateBranchInput{
		Name:        "   ",
		FranchiseID: uuid.New(),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatal("expected no save when franchise is missing")
	}
}

func TestCreateBranchPropagatesLoaderFailure(t *testing.T) {
	gatewayErr := pkgerrors.New(pkgerrors.CodeTimeout, "lookup timed out")
	repo := &stubRepo{}
	svc, _ := NewService(repo, &stubFranchiseLoader{findErr: gatewayErr})

	_, err := svc.Create(context.Background(), CreateBranchInput{Name: "Downtown", FranchiseID: uuid.New()})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeTimeout {
		t.Fatalf("expected loader failure unchanged, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatal("expected no save after loader failure")
	}
}

func TestUpdateNameBlank(t *testing.T) {
	svc, _ := NewService(&stubRepo{found: &models.Branch{ID: uuid.New()}}, &stubFranchiseLoader{})

	_, err := svc.UpdateName(context.Background(), uuid.New(), "  ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateNameNotFound(t *testing.T) {
	svc, _ := NewService(&stubRepo{}, &stubFranchiseLoader{})

	_, err := svc.UpdateName(context.Background(), uuid.New(), "Uptown")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateNameSuccess(t *testing.T) {
	existing := &models.Branch{ID: uuid.New(), Name: "Downtown", FranchiseID: uuid.New()}
	repo := &stubRepo{found: existing}
	svc, _ := NewService(repo, &stubFranchiseLoader{})

	dto, err := svc.UpdateName(context.Background(), existing.ID, " Uptown ")
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if dto.Name != "Uptown" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if !dto.UpdatedAt.After(dto.CreatedAt) {
		t.Fatal("expected updatedAt refreshed")
	}
}
