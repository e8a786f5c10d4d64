package controllers

import (
	"net/http"

	"github.com/smoralesdev/franchise-backend/api/responses"
	"github.com/smoralesdev/franchise-backend/api/validators"
	franchisesvc "github.com/smoralesdev/franchise-backend/internal/franchises"
	pkgerrors "github.com/smoralesdev/franchise-backend/pkg/errors"
	"github.com/smoralesdev/franchise-backend/pkg/logger"
)

type createFranchiseRequest struct {
	Name string `json:"name" validate:"required"`
}

type renameRequest struct {
	Name string `json:"name" validate:"required"`
}

// FranchiseCreate registers a new franchise.
func FranchiseCreate(svc franchisesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "franchise service unavailable"))
			return
		}

		var payload createFranchiseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		franchise, err := svc.Create(r.Context(), payload.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, franchise)
	}
}

// FranchiseUpdateName renames an existing franchise.
func FranchiseUpdateName(svc franchisesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "franchise service unavailable"))
			return
		}

		id, err := parseUUIDParam(r, "franchiseId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload renameRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		franchise, err := svc.UpdateName(r.Context(), id, payload.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, franchise)
	}
}
