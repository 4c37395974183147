package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WriteResponse writes a JSON response with the given status code.
func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most current data
	w.Header().Set("Cache-Control", "max-age=0")

	// Conditionally set the Location header if provided
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// DecodeJSONRequest decodes a JSON request body into v. Every key listed in
// required must be present in the body; a missing key is reported before the
// payload is used, so invalid requests never reach the registry.
func DecodeJSONRequest(r *http.Request, v interface{}, required ...string) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if len(body) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return fmt.Errorf("invalid request payload: %w", err)
		}
	}

	for _, key := range required {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("missing required data '%s'", key)
		}
	}

	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}
