package handler

import (
	"encoding/json"
	"net/http"
)

// apiResponse is the uniform JSON envelope: {success, data?, error?}. The
// error field carries one of the enumerated domain error kinds so the
// presentation layer's message mapping is total.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func successResponse(data any) apiResponse {
	return apiResponse{Success: true, Data: data}
}

func errorResponse(kind string) apiResponse {
	return apiResponse{Success: false, Error: kind}
}
