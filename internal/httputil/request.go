package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
)

const maxBodyBytes = 1 << 20

// ParseJSON decodes JSON from the request body into the given destination.
// It limits the request body size to prevent abuse.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// ParseForm decodes a url-encoded or multipart form into dest. The first
// value of every field is re-encoded as a JSON string and decoded with the
// same struct tags as ParseJSON, so one request type serves both bodies.
// Absent keys stay at their zero value.
func ParseForm(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("invalid form: %w", err)
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("invalid form: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("invalid form: %w", err)
	}
	return nil
}

// ParseBody dispatches on Content-Type: forms go through ParseForm,
// everything else is treated as JSON.
func ParseBody(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return ParseForm(w, r, dest)
	default:
		return ParseJSON(w, r, dest)
	}
}
