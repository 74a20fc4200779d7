package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hcorbage/corb3d/models"
)

// WriteJSON encodes data and writes it with statusCode. HTML characters are
// left unescaped and responses are marked no-store: they carry per-user
// rows and, for password resets, one-time credentials.
//
// When encoding fails nothing but a 500 is written and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// WriteMessage writes the {"message": "..."} envelope used for every error
// response and for plain acknowledgements.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
