// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/andremelo97/simplia-paas-sub002/internal/http/types"
	"github.com/andremelo97/simplia-paas-sub002/internal/identity"
	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/grants", a.grantAccess)
	mux.Get("/api/v0/grants/{id}", a.getGrant)
	mux.Delete("/api/v0/grants/{id}", a.revoke)
	mux.Get("/api/v0/tenants/{tenantID}/users/{userID}/grants", a.listUserGrants)
}

type grantAccessRequest struct {
	UserID        int64      `json:"user_id" validate:"required,gt=0"`
	TenantID      int64      `json:"tenant_id" validate:"required,gt=0"`
	ApplicationID string     `json:"application_id" validate:"required,uuid"`
	RoleInApp     string     `json:"role_in_app" validate:"required"`
	UserType      string     `json:"user_type" validate:"required"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (a *API) grantAccess(w http.ResponseWriter, r *http.Request) {
	var req grantAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	var grantedBy int64
	if id, ok := identity.FromContext(r.Context()); ok {
		grantedBy = id.UserID
	}

	grant, err := a.service.GrantAccess(r.Context(), &GrantRequest{
		UserID:        req.UserID,
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		RoleInApp:     req.RoleInApp,
		UserType:      req.UserType,
		GrantedBy:     grantedBy,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{Data: grant})
}

func (a *API) getGrant(w http.ResponseWriter, r *http.Request) {
	grant, err := a.service.GetGrant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: grant})
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	var revokedBy int64
	if id, ok := identity.FromContext(r.Context()); ok {
		revokedBy = id.UserID
	}

	if err := a.service.Revoke(r.Context(), chi.URLParam(r, "id"), revokedBy); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listUserGrants(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(chi.URLParam(r, "tenantID"), 10, 64)
	if err != nil || tenantID <= 0 {
		httptypes.WriteBadRequest(w, "tenantID must be a positive integer")
		return
	}
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		httptypes.WriteBadRequest(w, "userID must be a positive integer")
		return
	}

	grants, err := a.service.ListUserGrants(r.Context(), userID, tenantID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: grants})
}
