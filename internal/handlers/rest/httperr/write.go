package httperr

import (
	"encoding/json"
	"net/http"

	"console/internal/gateway/rest/backend"
	"console/internal/handlers/rest/dto"
)

const (
	MsgInvalidRequest = "Solicitud inválida"
	MsgInProgress     = "Ya hay una acción en curso. Espera a que termine."
	MsgFailed         = "No se pudo completar la operación. Intenta de nuevo."
)

// Write sends a JSON error body. The message is the backend's own text when
// err carries one, otherwise fallback.
func Write(w http.ResponseWriter, status int, err error, fallback string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   http.StatusText(status),
		Message: backend.UserMessage(err, fallback),
	})
}

// WriteBackend writes err with the status chosen by BackendStatus.
func WriteBackend(w http.ResponseWriter, err error, fallback string) {
	Write(w, BackendStatus(err), err, fallback)
}
