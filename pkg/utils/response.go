package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSON(w, statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func RespondWithMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Response{
		Success: true,
		Message: message,
	})
}

func RespondWithPagination(w http.ResponseWriter, statusCode int, data interface{}, p Pagination) {
	writeJSON(w, statusCode, Response{
		Success:    true,
		Data:       data,
		Pagination: &p,
	})
}

var verboseErrors = true

// SetVerboseErrors controls whether the detail field is written out.
// Production configuration turns it off at startup.
func SetVerboseErrors(v bool) {
	verboseErrors = v
}

// RespondWithError writes the failure envelope. The optional detail is
// suppressed outside development mode.
func RespondWithError(w http.ResponseWriter, statusCode int, message string, detail ...string) {
	resp := Response{
		Success: false,
		Message: message,
	}
	if verboseErrors && len(detail) > 0 {
		resp.Error = detail[0]
	}
	writeJSON(w, statusCode, resp)
}

func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}
