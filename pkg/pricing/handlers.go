// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"encoding/json"
	"net/http"
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
	mux.Post("/api/v0/pricing", a.createEntry)
	mux.Get("/api/v0/pricing/{id}", a.getEntry)
	mux.Patch("/api/v0/pricing/{id}", a.updateEntry)
	mux.Post("/api/v0/pricing/{id}/end", a.endEntry)
	mux.Post("/api/v0/pricing/schedule", a.schedulePrice)
	mux.Post("/api/v0/pricing/check", a.checkOverlap)
	mux.Get("/api/v0/applications/{appID}/pricing/current", a.currentPrice)
	mux.Get("/api/v0/applications/{appID}/pricing/history", a.history)
}

type createEntryRequest struct {
	ApplicationID string     `json:"application_id" validate:"required,uuid"`
	UserType      string     `json:"user_type" validate:"required"`
	PriceCents    int64      `json:"price_cents" validate:"gte=0"`
	Currency      string     `json:"currency" validate:"required,len=3"`
	BillingCycle  string     `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
	ValidFrom     time.Time  `json:"valid_from" validate:"required"`
	ValidTo       *time.Time `json:"valid_to"`
}

func (a *API) createEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	entry, err := a.service.CreateEntry(r.Context(), &types.PricingEntry{
		ApplicationID: req.ApplicationID,
		UserType:      req.UserType,
		PriceCents:    req.PriceCents,
		Currency:      req.Currency,
		BillingCycle:  req.BillingCycle,
		ValidFrom:     req.ValidFrom,
		ValidTo:       req.ValidTo,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{Data: entry})
}

func (a *API) getEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := a.service.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: entry})
}

type updateEntryRequest struct {
	PriceCents   *int64     `json:"price_cents" validate:"omitempty,gte=0"`
	ValidFrom    *time.Time `json:"valid_from"`
	ValidTo      *time.Time `json:"valid_to"`
	ClearValidTo bool       `json:"clear_valid_to"`
	Active       *bool      `json:"active"`
}

func (a *API) updateEntry(w http.ResponseWriter, r *http.Request) {
	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	entry, err := a.service.UpdateEntry(r.Context(), chi.URLParam(r, "id"), types.PricingEntryUpdate{
		PriceCents:   req.PriceCents,
		ValidFrom:    req.ValidFrom,
		ValidTo:      req.ValidTo,
		ClearValidTo: req.ClearValidTo,
		Active:       req.Active,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: entry})
}

type endEntryRequest struct {
	At *time.Time `json:"at"`
}

func (a *API) endEntry(w http.ResponseWriter, r *http.Request) {
	var req endEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	at := time.Now()
	if req.At != nil {
		at = *req.At
	}

	entry, err := a.service.EndEntry(r.Context(), chi.URLParam(r, "id"), at)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: entry})
}

type schedulePriceRequest struct {
	ApplicationID string    `json:"application_id" validate:"required,uuid"`
	UserType      string    `json:"user_type" validate:"required"`
	PriceCents    int64     `json:"price_cents" validate:"gte=0"`
	Currency      string    `json:"currency" validate:"required,len=3"`
	BillingCycle  string    `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
	ValidFrom     time.Time `json:"valid_from" validate:"required"`
}

func (a *API) schedulePrice(w http.ResponseWriter, r *http.Request) {
	var req schedulePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	entry, err := a.service.SchedulePrice(r.Context(), req.ApplicationID, req.UserType, req.PriceCents, req.Currency, req.BillingCycle, req.ValidFrom)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{Data: entry})
}

type checkOverlapRequest struct {
	ApplicationID string     `json:"application_id" validate:"required,uuid"`
	UserType      string     `json:"user_type" validate:"required"`
	BillingCycle  string     `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
	Currency      string     `json:"currency" validate:"required,len=3"`
	ValidFrom     time.Time  `json:"valid_from" validate:"required"`
	ValidTo       *time.Time `json:"valid_to"`
	ExcludeID     string     `json:"exclude_id" validate:"omitempty,uuid"`
}

type checkOverlapResponse struct {
	Conflict *types.PricingConflict `json:"conflict"`
}

// checkOverlap is a dry run of the validity check used on create and update.
func (a *API) checkOverlap(w http.ResponseWriter, r *http.Request) {
	var req checkOverlapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	conflict, err := a.service.CheckOverlap(r.Context(), req.ApplicationID, req.UserType, req.ValidFrom, req.ValidTo, req.BillingCycle, req.Currency, req.ExcludeID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: checkOverlapResponse{Conflict: conflict}})
}

func (a *API) currentPrice(w http.ResponseWriter, r *http.Request) {
	userType := r.URL.Query().Get("user_type")
	if userType == "" {
		httptypes.WriteBadRequest(w, "user_type query parameter is required")
		return
	}

	at := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httptypes.WriteBadRequest(w, "at must be RFC 3339")
			return
		}
		at = parsed
	}

	entry, err := a.service.GetPriceAt(r.Context(), chi.URLParam(r, "appID"), userType, at)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: entry})
}

func (a *API) history(w http.ResponseWriter, r *http.Request) {
	userType := r.URL.Query().Get("user_type")
	if userType == "" {
		httptypes.WriteBadRequest(w, "user_type query parameter is required")
		return
	}

	entries, err := a.service.GetHistory(r.Context(), chi.URLParam(r, "appID"), userType)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: entries})
}
