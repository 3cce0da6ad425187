// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/andremelo97/simplia-paas-sub002/internal/http/types"
	"github.com/andremelo97/simplia-paas-sub002/internal/logging"
	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/access-log", a.list)
	mux.Get("/api/v0/access-log/summary", a.summary)
	mux.Get("/api/v0/access-log/overview", a.overview)
	mux.Get("/api/v0/access-log/by-application", a.byApplication)
	mux.Get("/api/v0/access-log/by-tenant", a.byTenant)
	mux.Get("/api/v0/access-log/timeline", a.timeline)
	mux.Get("/api/v0/access-log/denial-reasons", a.denialReasons)
	mux.Get("/api/v0/access-log/alerts", a.securityAlerts)
}

func parseFilter(q url.Values) (types.AccessLogFilter, error) {
	var f types.AccessLogFilter

	if raw := q.Get("tenant_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, types.NewValidationError("tenant_id must be an integer")
		}
		f.TenantID = &id
	}
	if raw := q.Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, types.NewValidationError("user_id must be an integer")
		}
		f.UserID = &id
	}
	if raw := q.Get("application_id"); raw != "" {
		f.ApplicationID = &raw
	}
	if raw := q.Get("decision"); raw != "" {
		if raw != types.DecisionGranted && raw != types.DecisionDenied {
			return f, types.NewValidationError("decision must be granted or denied")
		}
		f.Decision = raw
	}
	f.IPAddress = q.Get("ip_address")

	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, types.NewValidationError("from must be RFC 3339")
		}
		f.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, types.NewValidationError("to must be RFC 3339")
		}
		f.To = &t
	}

	return f, nil
}

func parsePagination(q url.Values) types.Pagination {
	p := types.Pagination{
		SortBy:   q.Get("sort_by"),
		SortDesc: q.Get("order") != "asc",
	}
	if raw := q.Get("page"); raw != "" {
		if page, err := strconv.ParseInt(raw, 10, 64); err == nil {
			p.Page = page
		}
	}
	if raw := q.Get("size"); raw != "" {
		if size, err := strconv.ParseInt(raw, 10, 64); err == nil {
			p.Size = size
		}
	}
	return p
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}
	p := parsePagination(r.URL.Query())

	entries, total, err := a.service.FindFiltered(r.Context(), f, p)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	page := p.Page
	if page <= 0 {
		page = 1
	}
	size := p.Size
	if size <= 0 {
		size = 100
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data: entries,
		Meta: &httptypes.Pagination{Page: page, Size: size, Total: total},
	})
}

func (a *API) summary(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	summary, err := a.service.GetSummary(r.Context(), f)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: summary})
}

func (a *API) overview(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	overview, err := a.service.GetOverview(r.Context(), f)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: overview})
}

func (a *API) byApplication(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	counts, err := a.service.GetByApplication(r.Context(), f)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: counts})
}

func (a *API) byTenant(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	counts, err := a.service.GetByTenant(r.Context(), f)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: counts})
}

func (a *API) timeline(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	bucket := r.URL.Query().Get("bucket")
	if bucket == "" {
		bucket = "day"
	}

	buckets, err := a.service.GetTimeline(r.Context(), f, bucket)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: buckets})
}

func (a *API) denialReasons(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.ParseUint(raw, 10, 64)
	}

	reasons, err := a.service.GetTopDenialReasons(r.Context(), f, limit)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: reasons})
}

func (a *API) securityAlerts(w http.ResponseWriter, r *http.Request) {
	var req SecurityAlertsRequest

	q := r.URL.Query()
	if raw := q.Get("hours"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil {
			req.Hours = hours
		}
	}
	if raw := q.Get("threshold"); raw != "" {
		if threshold, err := strconv.ParseInt(raw, 10, 64); err == nil {
			req.Threshold = threshold
		}
	}
	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.ParseUint(raw, 10, 64); err == nil {
			req.Limit = limit
		}
	}

	alerts, err := a.service.GetSecurityAlerts(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: alerts})
}
