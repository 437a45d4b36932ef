package http

import (
	"net/http"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/utils"
	"github.com/MKhiriev/finance-flow/models"
)

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	response := models.Response{Success: true, Message: message, Data: data}
	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeSuccess").Msg("error writing response")
	}
}

// writeError maps err to a status and a public message and writes the
// error envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	response := models.Response{Success: false, Message: messageFromError(err, status)}
	if _, err = utils.WriteJSON(w, response, status); err != nil {
		log.Err(err).Str("func", "writeError").Msg("error writing response")
	}
}
