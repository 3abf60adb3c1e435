package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WeaponPaints_Go/internal/auth"
	"github.com/osse101/WeaponPaints_Go/internal/domain"
	"github.com/osse101/WeaponPaints_Go/internal/logger"
	"github.com/osse101/WeaponPaints_Go/internal/validation"
	"github.com/osse101/WeaponPaints_Go/internal/weapon"
)

// WeaponRequest is the body of a save request. Every field except paintId
// may be omitted.
type WeaponRequest struct {
	PaintID       *int             `json:"paintId"`
	Wear          *float64         `json:"wear,omitempty"`
	Seed          *int             `json:"seed,omitempty"`
	Nametag       *string          `json:"nametag,omitempty"`
	StatTrak      *bool            `json:"stattrak,omitempty"`
	StatTrakCount *int             `json:"stattrakCount,omitempty"`
	Stickers      []domain.Sticker `json:"stickers,omitempty"`
	Keychain      *domain.Keychain `json:"keychain,omitempty"`
}

func (req WeaponRequest) input() weapon.Input {
	return weapon.Input{
		PaintID:       req.PaintID,
		Wear:          req.Wear,
		Seed:          req.Seed,
		Nametag:       req.Nametag,
		StatTrak:      req.StatTrak,
		StatTrakCount: req.StatTrakCount,
		Stickers:      req.Stickers,
		Keychain:      req.Keychain,
	}
}

// WeaponListResponse lists a player's stored configurations
type WeaponListResponse struct {
	Weapons []domain.WeaponConfig `json:"weapons"`
}

// WeaponSavedResponse echoes the configuration as stored
type WeaponSavedResponse struct {
	Message string              `json:"message"`
	Weapon  domain.WeaponConfig `json:"weapon"`
}

// WeaponHandler serves the weapon configuration endpoints of the
// authenticated player
type WeaponHandler struct {
	service weapon.Service
	schemas validation.SchemaValidator
}

// NewWeaponHandler creates a new WeaponHandler
func NewWeaponHandler(service weapon.Service, schemas validation.SchemaValidator) *WeaponHandler {
	return &WeaponHandler{service: service, schemas: schemas}
}

// Routes mounts the weapon endpoints on r
func (h *WeaponHandler) Routes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Put("/{team}/{defindex}", h.HandleSave)
	r.Delete("/{team}/{defindex}", h.HandleDelete)
}

// HandleList returns every configuration of the authenticated player
// @Summary List weapon configurations
// @Tags weapons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WeaponListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/player/weapons [get]
func (h *WeaponHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	steamID, ok := h.player(w, r)
	if !ok {
		return
	}

	weapons, err := h.service.ListWeapons(r.Context(), steamID)
	if err != nil {
		h.fail(w, r, opList, err, ErrMsgFetchFailed)
		return
	}
	respondJSON(w, http.StatusOK, WeaponListResponse{Weapons: weapons})
}

// HandleSave creates or replaces one configuration
// @Summary Save a weapon configuration
// @Description Creates or fully replaces the configuration for a team and weapon. Omitted fields take their defaults.
// @Tags weapons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param team path int true "Team (2 = T, 3 = CT)"
// @Param defindex path int true "Weapon definition index"
// @Param request body WeaponRequest true "Configuration"
// @Success 200 {object} WeaponSavedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/player/weapons/{team}/{defindex} [put]
func (h *WeaponHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	steamID, ok := h.player(w, r)
	if !ok {
		return
	}
	team, defindex, ok := h.weaponKey(w, r, opSave)
	if !ok {
		return
	}

	req, ok := h.decodeSave(w, r)
	if !ok {
		return
	}

	saved, err := h.service.SaveWeapon(r.Context(), steamID, team, defindex, req.input())
	if err != nil {
		h.fail(w, r, opSave, err, ErrMsgSaveFailed)
		return
	}
	respondJSON(w, http.StatusOK, WeaponSavedResponse{Message: MsgWeaponSaved, Weapon: *saved})
}

// HandleDelete removes one configuration
// @Summary Delete a weapon configuration
// @Tags weapons
// @Produce json
// @Security BearerAuth
// @Param team path int true "Team (2 = T, 3 = CT)"
// @Param defindex path int true "Weapon definition index"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/player/weapons/{team}/{defindex} [delete]
func (h *WeaponHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	steamID, ok := h.player(w, r)
	if !ok {
		return
	}
	team, defindex, ok := h.weaponKey(w, r, opDelete)
	if !ok {
		return
	}

	if err := h.service.DeleteWeapon(r.Context(), steamID, team, defindex); err != nil {
		h.fail(w, r, opDelete, err, ErrMsgDeleteFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWeaponDeleted})
}

// player returns the authenticated owner, writing a 401 when there is none
func (h *WeaponHandler) player(w http.ResponseWriter, r *http.Request) (string, bool) {
	steamID, ok := auth.PlayerFromContext(r.Context())
	if !ok {
		RespondError(w, http.StatusUnauthorized, ErrTitleUnauthorized, ErrMsgNoPlayer)
		return "", false
	}
	return steamID, true
}

// weaponKey parses {team} and {defindex} and range-checks them before any
// body is read, so a bad key is reported the same way on every route.
func (h *WeaponHandler) weaponKey(w http.ResponseWriter, r *http.Request, op string) (int, int, bool) {
	team, err := strconv.Atoi(chi.URLParam(r, ParamTeam))
	if err == nil {
		err = validation.ValidateTeam(team)
	} else {
		err = domain.NewValidationError("team", validation.ErrMsgInvalidTeam)
	}
	if err != nil {
		h.fail(w, r, op, err, "")
		return 0, 0, false
	}

	defindex, err := strconv.Atoi(chi.URLParam(r, ParamDefindex))
	if err == nil {
		err = validation.ValidateWeaponDefindex(defindex)
	} else {
		err = domain.NewValidationError("defindex", validation.ErrMsgInvalidDefindex)
	}
	if err != nil {
		h.fail(w, r, op, err, "")
		return 0, 0, false
	}
	return team, defindex, true
}

// decodeSave reads the body, checks its shape against the request schema and
// decodes it
func (h *WeaponHandler) decodeSave(w http.ResponseWriter, r *http.Request) (WeaponRequest, bool) {
	log := logger.FromContext(r.Context())
	var req WeaponRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(w, http.StatusRequestEntityTooLarge, ErrTitleTooLarge, ErrMsgBodyTooLarge)
			return req, false
		}
		log.Warn(LogMsgBodyDecodeFailed, "error", err)
		RespondError(w, http.StatusBadRequest, ErrTitleValidation, ErrMsgInvalidRequest)
		return req, false
	}

	if err := h.schemas.ValidateBytes(body, validation.SchemaWeaponRequest); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.fail(w, r, opSave, err, "")
			return req, false
		}
		log.Error(LogMsgSchemaUnavailable, "error", err)
		RespondError(w, http.StatusInternalServerError, ErrTitleInternal, ErrMsgSaveFailed)
		return req, false
	}

	// the schema admits integers that overflow int; those fail here
	if err := json.Unmarshal(body, &req); err != nil {
		log.Warn(LogMsgBodyDecodeFailed, "error", err)
		RespondError(w, http.StatusBadRequest, ErrTitleValidation, ErrMsgInvalidRequest)
		return req, false
	}
	return req, true
}

// fail logs err and writes the mapped error response
func (h *WeaponHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error, failMsg string) {
	status, body := mapWeaponError(err, failMsg)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgRequestFailed, "operation", op, "error", err)
	} else {
		log.Debug(LogMsgRequestRejected, "operation", op, "status", status, "reason", body.Message)
	}
	RespondError(w, status, body.Error, body.Message)
}
