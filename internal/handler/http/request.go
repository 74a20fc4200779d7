package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

// maxBodyBytes caps request bodies. Backups carry the whole tenant and get a
// larger allowance.
const (
	maxBodyBytes       = 1 << 20
	maxBackupBodyBytes = 32 << 20
)

// decode reads the JSON body of r into dst and, when validate is set, checks
// it against the `validate` tags of its type.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, validate bool) error {
	return h.decodeLimited(w, r, dst, validate, maxBodyBytes)
}

func (h *Handler) decodeLimited(w http.ResponseWriter, r *http.Request, dst any, validate bool, limit int64) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}
	body := http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if !validate {
		return nil
	}
	return h.validator.Validate(r.Context(), dst)
}

// principal returns the caller stored by the auth middleware.
func principal(r *http.Request) (policy.Principal, models.Session, error) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return policy.Principal{}, models.Session{}, ErrNoSessionInContext
	}
	return policy.FromSession(session), session, nil
}

func idParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}

func writeOK(w http.ResponseWriter) {
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
