package handler

import (
	"io"
	"net/http"
	"strconv"

	listing "nearmarket/internal/listingService"
	model "nearmarket/internal/models"
	"nearmarket/internal/storage"
	"nearmarket/services/market/helpers"
	"nearmarket/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	CreateListing(sellerID string, in listing.CreateListingInput) (model.Listing, error)
	GetListing(listingID string) (model.Listing, error)
	GetListingsBySeller(sellerID string) ([]model.Listing, error)
	UpdateStatus(listingID, callerID, status string) error
	AddImage(listingID, callerID, imageURL string) error
	DeleteListing(listingID, callerID string) error
	Nearby(viewerID string, lat, lon, radiusKm float64) ([]listing.RankedListing, error)
}

type ListingHandler struct {
	service       ListingServiceInterface
	uploads       UploaderInterface
	listingBucket string
}

func NewListingHandler(service ListingServiceInterface, uploads UploaderInterface, listingBucket string) *ListingHandler {
	return &ListingHandler{service: service, uploads: uploads, listingBucket: listingBucket}
}

// CreateListingHandler handles POST /listings
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	sellerID := c.GetString(ContextUserID)

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	created, err := h.service.CreateListing(sellerID, listing.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Location:    req.Location,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", err, map[string]any{"seller_id": sellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": created.ListingID,
		"seller_id":  sellerID,
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	found, err := h.service.GetListing(listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, found, "listing retrieved successfully")
}

// MyListingsHandler handles GET /me/listings
func (h *ListingHandler) MyListingsHandler(c *gin.Context) {
	sellerID := c.GetString(ContextUserID)

	listings, err := h.service.GetListingsBySeller(sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "MyListingsHandler", err, map[string]any{"seller_id": sellerID})
		return
	}

	if listings == nil {
		listings = []model.Listing{}
	}
	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// NearbyListingsHandler handles GET /listings/nearby?lat=..&lon=..&radius_km=..
func (h *ListingHandler) NearbyListingsHandler(c *gin.Context) {
	viewerID := c.GetString(ContextUserID)

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		helpers.HandleBindError(c, "NearbyListingsHandler", errBadCoordinates)
		return
	}
	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)

	ranked, err := h.service.Nearby(viewerID, lat, lon, radius)
	if err != nil {
		helpers.HandleServiceError(c, "NearbyListingsHandler", err, map[string]any{"viewer_id": viewerID})
		return
	}

	if ranked == nil {
		ranked = []listing.RankedListing{}
	}
	utils.JSONResponse(c, http.StatusOK, ranked, "nearby listings retrieved successfully")
	helpers.LogSuccess("NearbyListingsHandler", "nearby listings retrieved successfully", map[string]any{
		"viewer_id": viewerID,
		"count":     len(ranked),
		"radius_km": radius,
	})
}

// UpdateListingStatusHandler handles PATCH /listings/:listing_id/status
func (h *ListingHandler) UpdateListingStatusHandler(c *gin.Context) {
	callerID := c.GetString(ContextUserID)
	listingID := c.Param("listing_id")

	var req helpers.UpdateListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateListingStatusHandler", err)
		return
	}

	if err := h.service.UpdateStatus(listingID, callerID, req.Status); err != nil {
		helpers.HandleServiceError(c, "UpdateListingStatusHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID, "status": req.Status}, "listing status updated successfully")
	helpers.LogSuccess("UpdateListingStatusHandler", "listing status updated successfully", map[string]any{
		"listing_id": listingID,
		"status":     req.Status,
	})
}

// UploadListingImageHandler handles POST /listings/:listing_id/images
func (h *ListingHandler) UploadListingImageHandler(c *gin.Context) {
	callerID := c.GetString(ContextUserID)
	listingID := c.Param("listing_id")

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
	if err != nil || len(data) == 0 {
		helpers.HandleBindError(c, "UploadListingImageHandler", errEmptyUpload(err))
		return
	}

	result, err := h.uploads.UploadImage(c.Request.Context(), h.listingBucket, listingID+"/"+utils.GenerateID(), data)
	if err != nil {
		helpers.HandleServiceError(c, "UploadListingImageHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	if err := h.service.AddImage(listingID, callerID, result.URL); err != nil {
		helpers.HandleServiceError(c, "UploadListingImageHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	resp := helpers.UploadResponse{URL: result.URL, Fallback: result.Outcome == storage.OutcomeFallback}
	utils.JSONResponse(c, http.StatusOK, resp, "image uploaded successfully")
	helpers.LogSuccess("UploadListingImageHandler", "image uploaded successfully", map[string]any{
		"listing_id": listingID,
		"fallback":   resp.Fallback,
	})
}

// DeleteListingHandler handles DELETE /listings/:listing_id
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	callerID := c.GetString(ContextUserID)
	listingID := c.Param("listing_id")

	if err := h.service.DeleteListing(listingID, callerID); err != nil {
		helpers.HandleServiceError(c, "DeleteListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID}, "listing deleted successfully")
	helpers.LogSuccess("DeleteListingHandler", "listing deleted successfully", map[string]any{
		"listing_id": listingID,
	})
}
