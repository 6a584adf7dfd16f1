package rest

import (
	"encoding/json"
	"net/http"

	"threadline-be/internal/logger"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// internalError hides the failure detail from the client and logs it with
// the request-scoped logger instead.
func internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromCtx(r.Context()).Error(msg, zap.Error(err))
	writeError(w, http.StatusInternalServerError, msg)
}
