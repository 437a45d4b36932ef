package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// fallbackBody is sent when a response value cannot be encoded.
const fallbackBody = `{"success":false,"message":"internal server error"}`

// WriteJSON serializes data and writes it with statusCode and an
// application/json content type.
//
// If marshaling fails, the client gets a 500 with the generic error
// envelope instead and the marshaling error is returned:
//
//	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
//	    log.Err(err).Msg("error writing response")
//	}
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(fallbackBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes s as a text/plain body.
func WriteText(w http.ResponseWriter, s string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return io.WriteString(w, s)
}
