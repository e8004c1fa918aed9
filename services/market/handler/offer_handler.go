package handler

import (
	"net/http"
	"time"

	model "nearmarket/internal/models"
	offer "nearmarket/internal/offerService"
	"nearmarket/services/market/helpers"
	"nearmarket/utils"

	"github.com/gin-gonic/gin"
)

type OfferServiceInterface interface {
	CreateOffer(listingID, buyerID string, offerPrice float64, message string) (model.Offer, error)
	RespondToOffer(offerID, action string) (offer.RespondResult, error)
	GetOffersForListing(listingID string) ([]model.Offer, error)
	GetOffersByBuyer(buyerID string) ([]model.Offer, error)
}

type OfferHandler struct {
	service OfferServiceInterface
}

func NewOfferHandler(service OfferServiceInterface) *OfferHandler {
	return &OfferHandler{service: service}
}

// CreateOfferHandler handles POST /offers
func (h *OfferHandler) CreateOfferHandler(c *gin.Context) {
	buyerID := c.GetString(ContextUserID)

	var req helpers.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateOfferHandler", err)
		return
	}

	created, err := h.service.CreateOffer(req.ListingID, buyerID, req.OfferPrice, req.Message)
	if err != nil {
		helpers.HandleServiceError(c, "CreateOfferHandler", err, map[string]any{
			"listing_id": req.ListingID,
			"buyer_id":   buyerID,
		})
		return
	}

	resp := helpers.OfferResponse{
		OfferID:    created.OfferID,
		ListingID:  created.ListingID,
		BuyerID:    created.BuyerID,
		SellerID:   created.SellerID,
		OfferPrice: created.OfferPrice,
		Message:    created.Message,
		Status:     created.Status,
		CreatedAt:  created.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "offer recorded successfully")
	helpers.LogSuccess("CreateOfferHandler", "offer recorded successfully", map[string]any{
		"offer_id":    created.OfferID,
		"listing_id":  created.ListingID,
		"buyer_id":    buyerID,
		"offer_price": created.OfferPrice,
	})
}

// RespondOfferHandler handles POST /offers/:offer_id/respond
func (h *OfferHandler) RespondOfferHandler(c *gin.Context) {
	offerID := c.Param("offer_id")

	var req helpers.RespondOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RespondOfferHandler", err)
		return
	}

	result, err := h.service.RespondToOffer(offerID, req.Action)
	if err != nil {
		helpers.HandleServiceError(c, "RespondOfferHandler", err, map[string]any{
			"offer_id": offerID,
			"action":   req.Action,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "offer response recorded successfully")
	helpers.LogSuccess("RespondOfferHandler", "offer response recorded successfully", map[string]any{
		"offer_id": offerID,
		"action":   req.Action,
		"chat_id":  result.ChatID,
	})
}

// GetOffersByListingHandler handles GET /listings/:listing_id/offers
func (h *OfferHandler) GetOffersByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	offers, err := h.service.GetOffersForListing(listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetOffersByListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	if offers == nil {
		offers = []model.Offer{}
	}
	utils.JSONResponse(c, http.StatusOK, offers, "offers retrieved successfully")
	helpers.LogSuccess("GetOffersByListingHandler", "offers retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(offers),
	})
}

// MyOffersHandler handles GET /me/offers
func (h *OfferHandler) MyOffersHandler(c *gin.Context) {
	buyerID := c.GetString(ContextUserID)

	offers, err := h.service.GetOffersByBuyer(buyerID)
	if err != nil {
		helpers.HandleServiceError(c, "MyOffersHandler", err, map[string]any{"buyer_id": buyerID})
		return
	}

	if offers == nil {
		offers = []model.Offer{}
	}
	utils.JSONResponse(c, http.StatusOK, offers, "offers retrieved successfully")
}
