// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andremelo97/simplia-paas-sub002/internal/types"
)

// Response is the standard JSON envelope returned by all API endpoints.
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Meta  *Pagination `json:"_meta,omitempty"`
	Error *Error      `json:"error,omitempty"`
}

type Pagination struct {
	Page  int64 `json:"page"`
	Size  int64 `json:"size"`
	Total int64 `json:"total"`
}

type Error struct {
	Status  int                    `json:"status"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// WriteJSON writes the envelope with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps an error to the standard error envelope. Engine errors carry
// their own status and code; anything else is an opaque 500.
func WriteError(w http.ResponseWriter, err error) {
	var engineErr *types.Error
	if errors.As(err, &engineErr) {
		WriteJSON(w, engineErr.Status, Response{Error: &Error{
			Status:  engineErr.Status,
			Code:    engineErr.Code,
			Message: engineErr.Message,
			Details: engineErr.Details,
		}})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, Response{Error: &Error{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL",
		Message: "internal server error",
	}})
}

// WriteBadRequest is used for malformed payloads before validation runs.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, Response{Error: &Error{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: message,
	}})
}
