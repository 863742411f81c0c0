// Copyright 2026 Crewline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package response holds the JSON response envelope shared by every
// API package.
package response

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// NotFound writes the one and only not-found response. Handlers use it
// both when a resource does not exist and when the caller is not
// allowed to know whether it exists; the two cases must stay
// byte-identical so responses cannot be used to probe for valid IDs.
func NotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, "resource not found")
}

func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "unauthorized")
}

func Forbidden(w http.ResponseWriter) {
	WriteError(w, http.StatusForbidden, "forbidden")
}

func InternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "internal server error")
}
