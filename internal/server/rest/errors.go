package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/snsplatform/internal/common"
)

const (
	msgUserNotFound   = "User not found"
	msgUserExists     = "User already exists"
	msgBodyTooLarge   = "Request body too large"
	msgInvalidJSON    = "Invalid JSON body"
	msgNotFound       = "Endpoint not found"
	msgMethodNotAllow = "Method not allowed"
	msgInternal       = "Internal server error"
)

// serviceErrorStatus maps a service error to a status and a client-safe
// message. Anything unrecognised is logged and reported as failMsg with 500.
func (h *handlers) serviceErrorStatus(r *http.Request, err error, failMsg string) (int, string) {
	var ve *common.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Reason
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, msgUserNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, msgUserExists
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, msgBodyTooLarge
	default:
		h.logger.Error(r.Context(), failMsg, "error", err, "method", r.Method, "path", r.URL.Path)
		return http.StatusInternalServerError, failMsg
	}
}

func (h *handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error, failMsg string) {
	status, msg := h.serviceErrorStatus(r, err, failMsg)
	respondError(w, status, msg)
}

// writeMutationError is writeServiceError for create, update and delete,
// whose failure bodies carry the text in message as well as error.
func (h *handlers) writeMutationError(w http.ResponseWriter, r *http.Request, err error, failMsg string) {
	status, msg := h.serviceErrorStatus(r, err, failMsg)
	respondFailure(w, status, msg)
}
