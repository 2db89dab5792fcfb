package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/backup"
	"github.com/debghosh/mysticresin/internal/models"
	"github.com/debghosh/mysticresin/internal/store"
	"github.com/debghosh/mysticresin/internal/theme"
)

// maxImportSize caps an uploaded snapshot; image galleries are inlined as
// data-URIs so documents can get large.
const maxImportSize = 32 << 20

type AdminHandler struct {
	store     *store.Store
	backup    *backup.Service
	projector *theme.Projector
	secret    []byte
	log       *zap.Logger
}

func NewAdminHandler(st *store.Store, svc *backup.Service, projector *theme.Projector, secret []byte, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{store: st, backup: svc, projector: projector, secret: secret, log: logger}
}

type loginRequest struct {
	AccessCode string `json:"accessCode"`
}

type loginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}

// Login checks the submitted access code. On success the session is
// persisted in the store and a bearer token is minted whose expiry mirrors
// the session's. A wrong code leaves any existing session untouched.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	ok, err := h.store.Login(req.AccessCode)
	if err != nil {
		h.log.Error("failed to persist session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	if !ok {
		respondJSON(w, http.StatusUnauthorized, loginResponse{Success: false})
		return
	}

	expiry := h.store.AdminState().SessionExpiry
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.UnixMilli(expiry).Unix(),
	})
	tokenString, err := token.SignedString(h.secret)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "token error")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresAt: expiry,
	})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(); err != nil {
		h.log.Error("failed to persist logout", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the current session record; handy for the admin UI to
// show time remaining.
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.AdminState())
}

// UpdateConfig applies a partial configuration update. A theme name
// outside the known set is rejected here so the projector never sees it.
func (h *AdminHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var patch models.ConfigPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if patch.Theme != nil {
		if _, ok := theme.Lookup(*patch.Theme); !ok {
			respondError(w, http.StatusBadRequest, "unknown theme")
			return
		}
	}

	cfg, err := h.store.ApplyConfig(patch)
	if err != nil {
		h.log.Error("failed to persist config", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save configuration")
		return
	}
	h.projector.Apply(cfg.Theme)
	respondJSON(w, http.StatusOK, cfg)
}

// Export streams the backup snapshot as a download.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.backup.Export()
	if err != nil {
		h.log.Error("export failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}

	filename := fmt.Sprintf("mysticresin-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import restores a snapshot. Failure is atomic and reported with a
// generic message; the document may be user-mangled in arbitrary ways.
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	if err := h.backup.Import(data); err != nil {
		h.log.Warn("import rejected", zap.Error(err))
		respondError(w, http.StatusBadRequest, "could not import data, check the file format")
		return
	}

	h.projector.Apply(h.store.Config().Theme)
	respondJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

type resetRequest struct {
	Confirm             bool `json:"confirm"`
	AcknowledgeDataLoss bool `json:"acknowledgeDataLoss"`
}

// Reset restores the built-in defaults. Both confirmation fields must be
// set; this deletes every product and post the admin has created.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !req.Confirm || !req.AcknowledgeDataLoss {
		respondError(w, http.StatusPreconditionRequired, "reset requires confirm and acknowledgeDataLoss")
		return
	}

	if err := h.store.ResetToDefaults(); err != nil {
		h.log.Error("reset failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to reset data")
		return
	}
	h.projector.Apply(h.store.Config().Theme)
	respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
