// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/andremelo97/simplia-paas-sub002/internal/http/types"
	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
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
	mux.Post("/api/v0/tenants/{tenantID}/licenses", a.grantLicense)
	mux.Get("/api/v0/tenants/{tenantID}/licenses/{appID}", a.getLicense)
	mux.Patch("/api/v0/tenants/{tenantID}/licenses/{appID}", a.updateLicense)
	mux.Get("/api/v0/tenants/{tenantID}/licenses/{appID}/seats", a.seatAvailability)
	mux.Post("/api/v0/licenses/expire", a.expireLicenses)
}

func tenantIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "tenantID"), 10, 64)
	return id, err == nil && id > 0
}

type grantLicenseRequest struct {
	ApplicationID  string     `json:"application_id" validate:"required,uuid"`
	Status         string     `json:"status" validate:"omitempty,oneof=active trial suspended expired revoked"`
	SeatsPurchased *int       `json:"seats_purchased" validate:"omitempty,gte=0"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

func (a *API) grantLicense(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDParam(r)
	if !ok {
		httptypes.WriteBadRequest(w, "tenantID must be a positive integer")
		return
	}

	var req grantLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	l, err := a.service.GrantLicense(r.Context(), &types.License{
		TenantID:       tenantID,
		ApplicationID:  req.ApplicationID,
		Status:         req.Status,
		SeatsPurchased: req.SeatsPurchased,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{Data: l})
}

func (a *API) getLicense(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDParam(r)
	if !ok {
		httptypes.WriteBadRequest(w, "tenantID must be a positive integer")
		return
	}

	l, err := a.service.GetLicense(r.Context(), tenantID, chi.URLParam(r, "appID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: l})
}

type updateLicenseRequest struct {
	Status         *string    `json:"status" validate:"omitempty,oneof=active trial suspended expired revoked"`
	SeatsPurchased *int       `json:"seats_purchased" validate:"omitempty,gte=0"`
	UnlimitedSeats bool       `json:"unlimited_seats"`
	ExpiresAt      *time.Time `json:"expires_at"`
	ClearExpiresAt bool       `json:"clear_expires_at"`
	TrialUsed      *bool      `json:"trial_used"`
}

func (a *API) updateLicense(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDParam(r)
	if !ok {
		httptypes.WriteBadRequest(w, "tenantID must be a positive integer")
		return
	}

	var req updateLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	l, err := a.service.UpdateLicense(r.Context(), tenantID, chi.URLParam(r, "appID"), types.LicenseUpdate{
		Status:         req.Status,
		SeatsPurchased: req.SeatsPurchased,
		UnlimitedSeats: req.UnlimitedSeats,
		ExpiresAt:      req.ExpiresAt,
		ClearExpiresAt: req.ClearExpiresAt,
		TrialUsed:      req.TrialUsed,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: l})
}

func (a *API) seatAvailability(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDParam(r)
	if !ok {
		httptypes.WriteBadRequest(w, "tenantID must be a positive integer")
		return
	}

	availability, err := a.service.CheckSeatAvailability(r.Context(), tenantID, chi.URLParam(r, "appID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: availability})
}

func (a *API) expireLicenses(w http.ResponseWriter, r *http.Request) {
	expired, err := a.service.ExpireLicenses(r.Context())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: map[string]interface{}{
		"expired_count": len(expired),
	}})
}
