package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/service"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

// applicationList wraps restricted listings with the read-only marker for
// viewers who are staff but not the owner.
type applicationList[T any] struct {
	Applications []T  `json:"applications"`
	ReadOnly     bool `json:"read_only"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := apiResponse{Success: status < 400, Data: data}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps service errors onto the wire format. Anything that is not
// a *service.Error is an internal failure and is logged, not leaked.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(svcErr.Status)
		resp := apiResponse{Error: &apiError{Code: svcErr.Code, Message: svcErr.Message}}
		if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
			logger.Error("failed to encode error response", "error", encErr)
		}
		return
	}

	logger.ErrorContext(r.Context(), "internal error", "method", r.Method, "path", r.URL.Path, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	resp := apiResponse{Error: &apiError{Code: "INTERNAL", Message: "internal server error"}}
	json.NewEncoder(w).Encode(resp)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return service.Invalid("malformed request body")
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, service.Invalid("invalid " + name)
	}
	return id, nil
}
