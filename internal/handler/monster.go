package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/monster"
)

type CreateMonsterRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Name    string `json:"name" validate:"required,max=50,excludesall=\x00\n\r\t"`
}

type CreateMonsterResponse struct {
	Monster   *domain.Monster `json:"monster"`
	PricePaid int             `json:"price_paid"`
}

// HandleCreateMonster creates a new monster for the owner
// @Summary Create monster
// @Description Create a monster; the first two are free, after that the price rises with each one
// @Tags monster
// @Accept json
// @Produce json
// @Param request body CreateMonsterRequest true "Monster details"
// @Success 201 {object} CreateMonsterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "Insufficient funds"
// @Failure 500 {object} ErrorResponse
// @Router /monsters [post]
func HandleCreateMonster(svc monster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateMonsterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create monster request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		log.Debug("Create monster request", "owner_id", req.OwnerID, "name", req.Name)

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}

		result, err := svc.CreateMonster(r.Context(), req.OwnerID, req.Name)
		if err != nil {
			log.Error("Failed to create monster", "error", err, "owner_id", req.OwnerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Monster created", "owner_id", req.OwnerID, "monster_id", result.Monster.ID, "price_paid", result.PricePaid)

		respondJSON(w, http.StatusCreated, CreateMonsterResponse{
			Monster:   result.Monster,
			PricePaid: result.PricePaid,
		})
	}
}

type GetMonsterResponse struct {
	Monster *domain.Monster `json:"monster"`
}

// HandleGetMonster returns a single monster owned by the caller
// @Summary Get monster
// @Description Get a monster by id; the monster must belong to the owner
// @Tags monster
// @Produce json
// @Param id path string true "Monster ID"
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} GetMonsterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Ownership mismatch"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /monsters/{id} [get]
func HandleGetMonster(svc monster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		monsterID := chi.URLParam(r, "id")
		if monsterID == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "id"))
			return
		}
		ownerID := r.URL.Query().Get("owner_id")
		if ownerID == "" {
			log.Warn("Missing owner_id query parameter")
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "owner_id"))
			return
		}

		m, err := svc.GetMonster(r.Context(), ownerID, monsterID)
		if err != nil {
			log.Error("Failed to get monster", "error", err, "monster_id", monsterID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, GetMonsterResponse{Monster: m})
	}
}

type ListMonstersResponse struct {
	Monsters []*domain.Monster `json:"monsters"`
}

// HandleListMonsters returns every monster the owner has
// @Summary List monsters
// @Description Get all monsters belonging to the owner, oldest first
// @Tags monster
// @Produce json
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} ListMonstersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /monsters [get]
func HandleListMonsters(svc monster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID := r.URL.Query().Get("owner_id")
		if ownerID == "" {
			log.Warn("Missing owner_id query parameter")
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "owner_id"))
			return
		}

		monsters, err := svc.ListMonsters(r.Context(), ownerID)
		if err != nil {
			log.Error("Failed to list monsters", "error", err, "owner_id", ownerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Monsters listed", "owner_id", ownerID, "count", len(monsters))

		respondJSON(w, http.StatusOK, ListMonstersResponse{Monsters: monsters})
	}
}

type NextMonsterPriceResponse struct {
	Price int `json:"price"`
}

// HandleNextMonsterPrice returns what the owner's next monster would cost
// @Summary Get next monster price
// @Description Get the creation price for the owner's next monster
// @Tags monster
// @Produce json
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} NextMonsterPriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /monsters/price [get]
func HandleNextMonsterPrice(svc monster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID := r.URL.Query().Get("owner_id")
		if ownerID == "" {
			log.Warn("Missing owner_id query parameter")
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "owner_id"))
			return
		}

		price, err := svc.NextMonsterPrice(r.Context(), ownerID)
		if err != nil {
			log.Error("Failed to get next monster price", "error", err, "owner_id", ownerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, NextMonsterPriceResponse{Price: price})
	}
}

type CareActionRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Action  string `json:"action" validate:"required,careaction"`
}

type CareActionResponse struct {
	Result *monster.ActionResult `json:"result"`
}

// HandlePerformAction applies a care action to a monster
// @Summary Perform care action
// @Description Apply a care action (feed, comfort, hug, wake); the right action cures the mood and earns XP plus a coin reward
// @Tags monster
// @Accept json
// @Produce json
// @Param id path string true "Monster ID"
// @Param request body CareActionRequest true "Action details"
// @Success 200 {object} CareActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Ownership mismatch"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /monsters/{id}/action [post]
func HandlePerformAction(svc monster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		monsterID := chi.URLParam(r, "id")
		if monsterID == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "id"))
			return
		}

		var req CareActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode care action request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		log.Debug("Care action request", "owner_id", req.OwnerID, "monster_id", monsterID, "action", req.Action)

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
			return
		}

		action := domain.CareAction(strings.ToLower(req.Action))
		result, err := svc.PerformAction(r.Context(), req.OwnerID, monsterID, action)
		if err != nil {
			log.Error("Failed to perform care action", "error", err, "monster_id", monsterID, "action", action)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Care action resolved",
			"monster_id", monsterID,
			"action", action,
			"new_state", result.NewState,
			"rewarded", result.Rewarded,
			"leveled_up", result.LeveledUp())

		respondJSON(w, http.StatusOK, CareActionResponse{Result: result})
	}
}
