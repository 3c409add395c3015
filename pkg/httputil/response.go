package httputil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/geograph/pkg/errors"
)

// ContentTypes maps artifact formats to MIME types.
var ContentTypes = map[string]string{
	"ps":    "application/postscript",
	"pdf":   "application/pdf",
	"svg":   "image/svg+xml",
	"png":   "image/png",
	"dot":   "text/vnd.graphviz; charset=utf-8",
	"neato": "image/svg+xml",
}

// ErrorBody is the JSON payload written by Error.
type ErrorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// Error writes err as JSON with the status derived from its code.
// Errors without a code are reported as internal errors.
func Error(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	JSON(w, errors.HTTPStatus(err), ErrorBody{Error: errors.UserMessage(err), Code: code})
}

// Artifact writes rendered bytes with the content type for format.
func Artifact(w http.ResponseWriter, format string, data []byte) {
	ct, ok := ContentTypes[format]
	if !ok {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
