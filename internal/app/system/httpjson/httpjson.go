// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the request/response helpers shared by the JSON API
// features. Every handler responds through these so that error payloads have
// one shape: {"error": "<human-readable message>"}.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps JSON request bodies. The API only ever receives small
// documents (names, titles, links).
const maxBodyBytes = 64 << 10

// errorResponse is the wire shape for every rejected operation.
type errorResponse struct {
	Error string `json:"error"`
}

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error payload with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, errorResponse{Error: msg})
}

// Decode reads a JSON request body into dst, rejecting unknown fields and
// oversized bodies. The returned error message is safe to surface to the
// caller.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
		case errors.As(err, &typeErr):
			return fmt.Errorf("invalid value for field %q", typeErr.Field)
		default:
			return errors.New("could not parse request body")
		}
	}
	// A second document after the first is a client bug.
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
