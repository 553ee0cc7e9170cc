package handler

import (
	"net/http"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/shop"
)

// SetPriceRequest sets a new item price
type SetPriceRequest struct {
	Price *int64 `json:"price" validate:"required,gte=0"`
}

// ListResponse wraps a list payload
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// ShopHandlers contains HTTP handlers for the creator catalog
type ShopHandlers struct {
	service shop.Service
}

// NewShopHandlers creates new shop handlers
func NewShopHandlers(service shop.Service) *ShopHandlers {
	return &ShopHandlers{service: service}
}

// HandleGetApplications lists the applications items are filed under
func (h *ShopHandlers) HandleGetApplications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ListResponse[string]{Items: h.service.Applications()})
	}
}

// HandleGetCategories lists the categories of an application that have items
func (h *ShopHandlers) HandleGetCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID, ok := GetInt64QueryParam(r, w, "guild_id")
		if !ok {
			return
		}
		app, ok := GetQueryParam(r, w, "application")
		if !ok {
			return
		}
		categories, err := h.service.Categories(r.Context(), guildID, app)
		if err != nil {
			respondServiceError(w, r, "List categories", err)
			return
		}
		respondJSON(w, http.StatusOK, ListResponse[string]{Items: categories})
	}
}

// HandleGetItems lists the items of one category, or a creator's uploads
// when creator_id is given.
func (h *ShopHandlers) HandleGetItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID, ok := GetInt64QueryParam(r, w, "guild_id")
		if !ok {
			return
		}

		if GetOptionalQueryParam(r, "creator_id", "") != "" {
			creatorID, ok := GetInt64QueryParam(r, w, "creator_id")
			if !ok {
				return
			}
			uploads, err := h.service.CreatorUploads(r.Context(), guildID, creatorID)
			if err != nil {
				respondServiceError(w, r, "List uploads", err)
				return
			}
			respondJSON(w, http.StatusOK, ListResponse[domain.ShopItem]{Items: uploads})
			return
		}

		app, ok := GetQueryParam(r, w, "application")
		if !ok {
			return
		}
		category, ok := GetQueryParam(r, w, "category")
		if !ok {
			return
		}
		items, err := h.service.ItemsInCategory(r.Context(), guildID, app, category)
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}
		respondJSON(w, http.StatusOK, ListResponse[domain.ShopItemSummary]{Items: items})
	}
}

// HandleGetItem returns one item with its links
func (h *ShopHandlers) HandleGetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetItemIDParam(r, w)
		if !ok {
			return
		}
		guildID, ok := GetInt64QueryParam(r, w, "guild_id")
		if !ok {
			return
		}
		item, err := h.service.ItemDetails(r.Context(), guildID, id)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleUpload creates a catalog entry on behalf of a creator
func (h *ShopHandlers) HandleUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shop.UploadRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upload item"); err != nil {
			return
		}
		item, err := h.service.Upload(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "Upload item", err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleSetPrice changes an item's price
func (h *ShopHandlers) HandleSetPrice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetItemIDParam(r, w)
		if !ok {
			return
		}
		guildID, ok := GetInt64QueryParam(r, w, "guild_id")
		if !ok {
			return
		}
		var req SetPriceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set price"); err != nil {
			return
		}
		item, err := h.service.SetPrice(r.Context(), guildID, id, *req.Price)
		if err != nil {
			respondServiceError(w, r, "Set price", err)
			return
		}
		logger.FromContext(r.Context()).Info(MsgPriceUpdated, "item_id", id, "price", item.Price)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgPriceUpdated, Data: item})
	}
}

// HandleRemoveItem deletes an item from the catalog
func (h *ShopHandlers) HandleRemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetItemIDParam(r, w)
		if !ok {
			return
		}
		guildID, ok := GetInt64QueryParam(r, w, "guild_id")
		if !ok {
			return
		}
		item, err := h.service.RemoveItem(r.Context(), guildID, id)
		if err != nil {
			respondServiceError(w, r, "Remove item", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemRemoved, Data: item})
	}
}

// HandleGetSchema describes the persisted item table
func (h *ShopHandlers) HandleGetSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cols, err := h.service.CatalogSchema(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get schema", err)
			return
		}
		respondJSON(w, http.StatusOK, ListResponse[domain.ColumnInfo]{Items: cols})
	}
}
