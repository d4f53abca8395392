package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/gateway/rest/backend"
	"console/internal/handlers/rest/dto"
	"console/internal/handlers/rest/httperr"
	"console/internal/service/auth"
	"console/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, err, httperr.MsgInvalidRequest)
		return
	}

	user, err := h.service.Login(r.Context(), auth.Credentials{
		Username: loginDTO.Username,
		Password: loginDTO.Password,
		TenantID: loginDTO.TenantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			httperr.Write(w, http.StatusBadRequest, err, "Ingresa usuario y contraseña")
		case errors.Is(err, auth.ErrPasswordTooShort):
			httperr.Write(w, http.StatusBadRequest, err, "La contraseña es demasiado corta")
		case errors.Is(err, auth.ErrInvalidCredentials):
			httperr.Write(w, http.StatusUnauthorized, err, "Usuario o contraseña incorrectos")
		case errors.Is(err, backend.ErrTimeout):
			httperr.Write(w, http.StatusGatewayTimeout, err, httperr.MsgFailed)
		case errors.Is(err, auth.ErrMissingToken),
			errors.Is(err, backend.ErrNetwork),
			errors.Is(err, backend.ErrInvalidResponse):
			httperr.Write(w, http.StatusBadGateway, err, "Error al iniciar sesión")
		default:
			httperr.WriteBackend(w, err, "Error al iniciar sesión")
		}
		return
	}

	response := dto.LoginResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role.String(),
		TenantID:  user.TenantID,
		ExpiresAt: dto.TimePtr(user.ExpiresAt),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
