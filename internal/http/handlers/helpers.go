package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/logx"
)

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("http error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, ErrorResponse{Error: msg})
}

// writeAppError maps an apperr kind to its HTTP status. Unclassified errors are hidden behind a 500.
func writeAppError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrUnavailable):
		writeError(logger, w, r, http.StatusServiceUnavailable, err.Error())
	default:
		logger.Error("internal error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

const (
	bodyLimit = 1 << 20
)

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	return true
}
