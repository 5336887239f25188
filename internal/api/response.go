package api

import (
	"encoding/json"
	"log"
	"net/http"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, errorResponse{Error: message})
}

// jsonErrorDetails writes a JSON error response with a details object
// naming the offending fields.
func jsonErrorDetails(w http.ResponseWriter, status int, message string, details any) {
	jsonResponse(w, status, errorResponse{Error: message, Details: details})
}

// decodeObject decodes the request body into a generic JSON object.
// Numbers are kept as json.Number so their exact textual form reaches
// the field validators.
func decodeObject(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return nil, errNotAnObject
	}
	return obj, nil
}
