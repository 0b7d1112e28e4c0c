package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/errs"
	"github.com/umakantv/go-utils/httpserver"
	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"wardrobe-service/store"
)

// errBadRequest marks malformed or invalid request input
var errBadRequest = errors.New("bad request")

var validate = validator.New()

// logRequest logs the request prefixed with its route, method, path and client
func logRequest(ctx context.Context, level string, message string, fields ...zap.Field) {
	routeName := httpserver.GetRouteName(ctx)
	method := httpserver.GetRouteMethod(ctx)
	path := httpserver.GetRoutePath(ctx)
	auth := httpserver.GetRequestAuth(ctx)

	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + routeName + " - " + method + " - " + path
	if auth != nil {
		logMsg += " - client:" + auth.Client
	}
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("route", routeName),
		zap.String("method", method),
		zap.String("path", path),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}

// writeJSON writes v with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeRaw writes an already encoded JSON body
func writeRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// errorResponse maps a handler or store error to a status and error payload
func errorResponse(err error, message string) (int, interface{}) {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, errs.NewValidationError(strings.TrimPrefix(err.Error(), errBadRequest.Error()+": "))
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict, errs.NewValidationError("Record already exists")
	case errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest, errs.NewValidationError("Referenced record does not exist")
	case errors.Is(err, store.ErrInvalidInput):
		return http.StatusBadRequest, errs.NewValidationError("Invalid input")
	}
	return http.StatusInternalServerError, errs.NewInternalServerError(message)
}

// respondError logs err and writes its payload
func respondError(ctx context.Context, w http.ResponseWriter, err error, message string, fields ...zap.Field) {
	status, payload := errorResponse(err, message)

	level := "info"
	if status >= http.StatusInternalServerError {
		level = "error"
	}
	logRequest(ctx, level, message, append(fields, zap.Error(err), zap.Int("status", status))...)

	writeJSON(w, status, payload)
}

// decodeRequest reads a JSON body into v and validates it
func decodeRequest(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: Invalid JSON", errBadRequest)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", errBadRequest, err.Error())
	}
	return nil
}

// pathID parses the positive integer route variable name
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: Invalid %s %q", errBadRequest, name, raw)
	}
	return id, nil
}

// queryEmail reads the required email query parameter
func queryEmail(r *http.Request) (string, error) {
	email := r.URL.Query().Get("email")
	if err := validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: A valid email query parameter is required", errBadRequest)
	}
	return email, nil
}
