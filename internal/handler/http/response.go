package http

import (
	"encoding/json"
	"net/http"

	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/models"
)

// writeData writes a success envelope with the given status and payload.
func writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeEnvelope(w, r, models.NewDataResponse(status, data))
}

// writeError writes a failure envelope whose message is resolved through
// the localized catalog for the request's Accept-Language.
func writeError(w http.ResponseWriter, r *http.Request, status int, msgID messageID) {
	writeEnvelope(w, r, models.NewErrorResponse(status, translate(msgID, r.Header.Get("Accept-Language"))))
}

// writeErrorWithID is writeError with the offending identifier attached
// to the message (e.g. the product or email the failure refers to).
func writeErrorWithID(w http.ResponseWriter, r *http.Request, status int, msgID messageID, id string) {
	body := models.NewErrorResponse(status, translate(msgID, r.Header.Get("Accept-Language")))
	body.Message["id"] = id
	writeEnvelope(w, r, body)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, body models.ResponseBody) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error marshaling response envelope")
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	if _, err := w.Write(jsonData); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response body")
	}
}
