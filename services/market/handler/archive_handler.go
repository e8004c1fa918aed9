package handler

import (
	"net/http"

	model "nearmarket/internal/models"
	"nearmarket/services/market/helpers"
	"nearmarket/utils"

	"github.com/gin-gonic/gin"
)

type ArchiveServiceInterface interface {
	Save(userID, listingID string) error
	Remove(userID, listingID string) error
	List(userID string) ([]model.Listing, error)
}

type ArchiveHandler struct {
	service ArchiveServiceInterface
}

func NewArchiveHandler(service ArchiveServiceInterface) *ArchiveHandler {
	return &ArchiveHandler{service: service}
}

// SaveArchiveHandler handles POST /archive
func (h *ArchiveHandler) SaveArchiveHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	var req helpers.SaveArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SaveArchiveHandler", err)
		return
	}

	if err := h.service.Save(userID, req.ListingID); err != nil {
		helpers.HandleServiceError(c, "SaveArchiveHandler", err, map[string]any{"listing_id": req.ListingID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"listing_id": req.ListingID}, "listing saved successfully")
	helpers.LogSuccess("SaveArchiveHandler", "listing saved successfully", map[string]any{
		"user_id":    userID,
		"listing_id": req.ListingID,
	})
}

// RemoveArchiveHandler handles DELETE /archive/:listing_id
func (h *ArchiveHandler) RemoveArchiveHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	listingID := c.Param("listing_id")

	if err := h.service.Remove(userID, listingID); err != nil {
		helpers.HandleServiceError(c, "RemoveArchiveHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID}, "listing unsaved successfully")
}

// ListArchiveHandler handles GET /archive
func (h *ArchiveHandler) ListArchiveHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	listings, err := h.service.List(userID)
	if err != nil {
		helpers.HandleServiceError(c, "ListArchiveHandler", err, map[string]any{"user_id": userID})
		return
	}

	if listings == nil {
		listings = []model.Listing{}
	}
	utils.JSONResponse(c, http.StatusOK, listings, "saved listings retrieved successfully")
}
