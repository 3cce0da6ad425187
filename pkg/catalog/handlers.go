// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"encoding/json"
	"net/http"

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
	mux.Post("/api/v0/applications", a.createApplication)
	mux.Get("/api/v0/applications", a.listApplications)
	mux.Get("/api/v0/applications/{appID}", a.getApplication)
	mux.Get("/api/v0/applications/slug/{slug}", a.getApplicationBySlug)
	mux.Patch("/api/v0/applications/{appID}/status", a.setApplicationStatus)
}

type createApplicationRequest struct {
	Slug                 string `json:"slug" validate:"required"`
	Name                 string `json:"name" validate:"required"`
	Status               string `json:"status" validate:"omitempty,oneof=active deprecated trial"`
	RequiresProvisioning bool   `json:"requires_provisioning"`
}

func (a *API) createApplication(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	app, err := a.service.CreateApplication(r.Context(), &types.Application{
		Slug:                 req.Slug,
		Name:                 req.Name,
		Status:               req.Status,
		RequiresProvisioning: req.RequiresProvisioning,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{Data: app})
}

func (a *API) listApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := a.service.ListApplications(r.Context())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: apps})
}

func (a *API) getApplication(w http.ResponseWriter, r *http.Request) {
	app, err := a.service.GetApplication(r.Context(), chi.URLParam(r, "appID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: app})
}

func (a *API) getApplicationBySlug(w http.ResponseWriter, r *http.Request) {
	app, err := a.service.GetApplicationBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: app})
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active deprecated trial"`
}

func (a *API) setApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	app, err := a.service.SetApplicationStatus(r.Context(), chi.URLParam(r, "appID"), req.Status)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: app})
}
