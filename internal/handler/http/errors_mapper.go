package http

import (
	"errors"
	"net/http"

	"github.com/hcorbage/corb3d/internal/adapter"
	"github.com/hcorbage/corb3d/internal/app"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrNotAuthenticated:   http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrSessionExpired:     http.StatusUnauthorized,
	ErrNoSessionInContext:         http.StatusUnauthorized,

	service.ErrForbidden:             http.StatusForbidden,
	service.ErrIdentityProofMismatch: http.StatusForbidden,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrCredentialsRequired:     http.StatusBadRequest,
	service.ErrUsernameRequired:        http.StatusBadRequest,
	service.ErrWeakPassword:            http.StatusBadRequest,
	service.ErrIdentityProofRequired:   http.StatusBadRequest,
	service.ErrInvalidPostalCode:       http.StatusBadRequest,
	service.ErrCannotDeleteSelf:        http.StatusBadRequest,
	service.ErrCurrentPasswordRequired: http.StatusBadRequest,
	service.ErrWrongCurrentPassword:    http.StatusBadRequest,
	service.ErrUnknownEmployee:         http.StatusBadRequest,
	service.ErrInvalidPeriod:           http.StatusBadRequest,
	service.ErrNoAdminFound:            http.StatusNotFound,
	validators.ErrInvalidPayload:       http.StatusBadRequest,
	ErrInvalidJSON:                     http.StatusBadRequest,

	store.ErrNotFound:              http.StatusNotFound,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrDuplicateStockItem:    http.StatusConflict,
	store.ErrEmployeeAlreadyLinked: http.StatusConflict,
	store.ErrDuplicateTaxID:        http.StatusBadRequest,

	adapter.ErrPostalCodeUnavailable: http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrNotAuthenticated:   app.MsgNotAuthenticated,
	service.ErrSessionExpired:     app.MsgNotAuthenticated,
	ErrNoSessionInContext:         app.MsgNotAuthenticated,
	service.ErrInvalidCredentials: app.MsgInvalidCredentials,

	service.ErrForbidden:             app.MsgForbidden,
	service.ErrIdentityProofMismatch: app.MsgIdentityProofMismatch,

	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrCredentialsRequired:     app.MsgCredentialsRequired,
	service.ErrUsernameRequired:        app.MsgUsernameRequired,
	service.ErrWeakPassword:            app.MsgWeakPassword,
	service.ErrIdentityProofRequired:   app.MsgIdentityProofRequired,
	service.ErrInvalidPostalCode:       app.MsgInvalidPostalCode,
	service.ErrCannotDeleteSelf:        app.MsgCannotDeleteSelf,
	service.ErrCurrentPasswordRequired: app.MsgCurrentPasswordRequired,
	service.ErrWrongCurrentPassword:    app.MsgWrongCurrentPassword,
	service.ErrUnknownEmployee:         app.MsgUnknownEmployee,
	service.ErrInvalidPeriod:           app.MsgInvalidPeriod,
	service.ErrNoAdminFound:            app.MsgNoAdminFound,
	validators.ErrInvalidPayload:       app.MsgInvalidDataProvided,
	ErrInvalidJSON:                     app.MsgInvalidDataProvided,

	store.ErrNotFound:              app.MsgNotFound,
	store.ErrNoUserWasFound:        app.MsgUserNotFound,
	store.ErrUsernameAlreadyExists: app.MsgUserAlreadyExists,
	store.ErrDuplicateStockItem:    app.MsgDuplicateStockItem,
	store.ErrEmployeeAlreadyLinked: app.MsgEmployeeAlreadyLinked,
	store.ErrDuplicateTaxID:        app.MsgDuplicateTaxID,

	adapter.ErrPostalCodeUnavailable: app.MsgPostalCodeUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and message.
// Unmapped errors become 500 without leaking their text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err), status)
}
