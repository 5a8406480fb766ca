// Package httpjson holds the request/response helpers shared by the JSON
// API feature handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies. Entities here are small metadata
// records; anything near 1 MB is a client bug.
const maxBodyBytes = 1 << 20

// Read decodes the request body into dst. Unknown fields are rejected so
// shape drift between client and server surfaces immediately.
func Read(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	// Trailing garbage after the JSON value is also a malformed body.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}

// Write encodes v as the JSON response with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body: {"error": "..."}.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}

// Deleted writes the body every DELETE endpoint returns.
func Deleted(w http.ResponseWriter) {
	Write(w, http.StatusOK, map[string]bool{"success": true})
}

// BadRequest logs the decode failure and writes a 400.
func BadRequest(w http.ResponseWriter, log *zap.Logger, err error) {
	if log != nil {
		log.Debug("bad request body", zap.Error(err))
	}
	Error(w, http.StatusBadRequest, "invalid request body")
}
