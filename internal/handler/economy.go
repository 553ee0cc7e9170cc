package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/economy"
	"github.com/osse101/RocksBot_Go/internal/logger"
)

// UserKeyRequest identifies a member of a guild
type UserKeyRequest struct {
	UserID  int64 `json:"user_id,string" validate:"required,gt=0"`
	GuildID int64 `json:"guild_id,string" validate:"required,gt=0"`
}

// CoinsRequest is an administrative balance adjustment
type CoinsRequest struct {
	UserID  int64 `json:"user_id,string" validate:"required,gt=0"`
	GuildID int64 `json:"guild_id,string" validate:"required,gt=0"`
	Amount  int64 `json:"amount" validate:"required,gt=0"`
}

// EconomyHandlers contains HTTP handlers for balances, levels and daily claims
type EconomyHandlers struct {
	service economy.Service
	now     func() time.Time
}

// NewEconomyHandlers creates new economy handlers
func NewEconomyHandlers(service economy.Service) *EconomyHandlers {
	return &EconomyHandlers{service: service, now: time.Now}
}

// HandleGetProfile returns balance, level, XP progress, streak and luck
func (h *EconomyHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := GetUserKeyQuery(r, w)
		if !ok {
			return
		}
		profile, err := h.service.GetProfile(r.Context(), key)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleGetDropRates returns the passive reward ranges a user currently rolls in
func (h *EconomyHandlers) HandleGetDropRates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := GetUserKeyQuery(r, w)
		if !ok {
			return
		}
		rates, err := h.service.GetDropRates(r.Context(), key)
		if err != nil {
			respondServiceError(w, r, "Get drop rates", err)
			return
		}
		respondJSON(w, http.StatusOK, rates)
	}
}

// HandleMessage records a chat message and grants any passive rewards.
// It lets chat bridges other than the gateway listener feed the economy.
func (h *EconomyHandlers) HandleMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserKeyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Handle message"); err != nil {
			return
		}
		result, err := h.service.HandleMessage(r.Context(), userKey(req.UserID, req.GuildID), h.now())
		if err != nil {
			respondServiceError(w, r, "Handle message", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleClaimDaily attempts the daily reward
func (h *EconomyHandlers) HandleClaimDaily() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserKeyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim daily"); err != nil {
			return
		}
		result, err := h.service.ClaimDaily(r.Context(), userKey(req.UserID, req.GuildID), h.now())
		if err != nil {
			respondServiceError(w, r, "Claim daily", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGiveCoins credits a user's balance
func (h *EconomyHandlers) HandleGiveCoins() http.HandlerFunc {
	return h.adjust("Give coins", h.service.GiveCoins)
}

// HandleRemoveCoins debits a user's balance, never below zero
func (h *EconomyHandlers) HandleRemoveCoins() http.HandlerFunc {
	return h.adjust("Remove coins", h.service.RemoveCoins)
}

type adjustFunc func(ctx context.Context, key domain.UserKey, amount int64) (*economy.BalanceChange, error)

func (h *EconomyHandlers) adjust(action string, fn adjustFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CoinsRequest
		if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "user_id", req.UserID, "guild_id", req.GuildID, "amount", req.Amount)

		change, err := fn(r.Context(), userKey(req.UserID, req.GuildID), req.Amount)
		if err != nil {
			respondServiceError(w, r, action, err)
			return
		}
		respondJSON(w, http.StatusOK, change)
	}
}

func userKey(userID, guildID int64) domain.UserKey {
	return domain.UserKey{UserID: userID, GuildID: guildID}
}
