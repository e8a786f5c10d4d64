package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/smoralesdev/franchise-backend/api/responses"
	"github.com/smoralesdev/franchise-backend/api/validators"
	branchsvc "github.com/smoralesdev/franchise-backend/internal/branches"
	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
	"github.com/smoralesdev/franchise-backend/pkg/logger"
)

// Branch names are not validated on create: a missing franchise must win
// over any payload concern, so only the franchise reference is checked here.
type createBranchRequest struct {
	Name        string    `json:"name"`
	FranchiseID uuid.UUID `json:"franchise_id" validate:"required"`
}

// BranchCreate registers a branch under an existing franchise.
func BranchCreate(svc branchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "branch service unavailable"))
			return
		}

		var payload createBranchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		branch, err := svc.Create(r.Context(), branchsvc.CreateBranchInput{
			Name:        payload.Name,
			FranchiseID: payload.FranchiseID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, branch)
	}
}

// BranchUpdateName renames an existing branch.
func BranchUpdateName(svc branchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "branch service unavailable"))
			return
		}

		id, err := parseUUIDParam(r, "branchId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload renameRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		branch, err := svc.UpdateName(r.Context(), id, payload.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, branch)
	}
}
