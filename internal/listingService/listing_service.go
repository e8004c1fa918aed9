package listing

import (
	"fmt"
	"time"

	"nearmarket/internal/marketerrors"
	"nearmarket/internal/models"
	"nearmarket/internal/repository"
	"nearmarket/utils"
)

// CreateListingInput carries the fields a seller supplies for a new listing.
type CreateListingInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Images      []string
	Location    models.Location
}

// ListingService owns listing CRUD and the nearby ranking.
type ListingService struct {
	repo repository.MarketDB
}

// NewListingService creates a new ListingService instance
func NewListingService(repo repository.MarketDB) *ListingService {
	return &ListingService{
		repo: repo,
	}
}

// CreateListing validates and stores a new active listing for the seller
func (s *ListingService) CreateListing(sellerID string, in CreateListingInput) (models.Listing, error) {
	if sellerID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty seller ID", marketerrors.ErrValidation)
	}
	if in.Title == "" {
		return models.Listing{}, fmt.Errorf("service: %w - listing title is required", marketerrors.ErrValidation)
	}
	if in.Price <= 0 {
		return models.Listing{}, fmt.Errorf("service: %w - non-positive listing price", marketerrors.ErrValidation)
	}

	now := time.Now().UTC()
	listing := models.Listing{
		ListingID:   utils.GenerateID(),
		SellerID:    sellerID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Images:      in.Images,
		Status:      models.ListingActive,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateListing(listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing for seller %s: %w", sellerID, err)
	}
	return listing, nil
}

// GetListing returns a single listing by id
func (s *ListingService) GetListing(listingID string) (models.Listing, error) {
	if listingID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty listing ID", marketerrors.ErrValidation)
	}

	listing, err := s.repo.GetListingByID(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// GetListingsBySeller returns all of a seller's listings
func (s *ListingService) GetListingsBySeller(sellerID string) ([]models.Listing, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", marketerrors.ErrValidation)
	}

	listings, err := s.repo.GetListingsBySeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listings for seller %s: %w", sellerID, err)
	}
	return listings, nil
}

// UpdateStatus moves a listing to active, sold or archived. Only the owning
// seller may do so.
func (s *ListingService) UpdateStatus(listingID, callerID, status string) error {
	switch status {
	case models.ListingActive, models.ListingSold, models.ListingArchived:
	default:
		return fmt.Errorf("service: %w - unknown listing status %q", marketerrors.ErrValidation, status)
	}

	if err := s.requireOwner(listingID, callerID); err != nil {
		return err
	}

	if err := s.repo.UpdateListingStatus(listingID, status); err != nil {
		return fmt.Errorf("service: failed to update status of listing %s: %w", listingID, err)
	}
	return nil
}

// AddImage appends an uploaded image URL to the listing. Only the owning
// seller may do so.
func (s *ListingService) AddImage(listingID, callerID, imageURL string) error {
	if imageURL == "" {
		return fmt.Errorf("service: %w - empty image URL", marketerrors.ErrValidation)
	}

	if err := s.requireOwner(listingID, callerID); err != nil {
		return err
	}

	if err := s.repo.AppendListingImage(listingID, imageURL); err != nil {
		return fmt.Errorf("service: failed to add image to listing %s: %w", listingID, err)
	}
	return nil
}

// DeleteListing removes a listing and its dependent rows. Only the owning
// seller may do so.
func (s *ListingService) DeleteListing(listingID, callerID string) error {
	if err := s.requireOwner(listingID, callerID); err != nil {
		return err
	}

	if err := s.repo.DeleteListing(listingID); err != nil {
		return fmt.Errorf("service: failed to delete listing %s: %w", listingID, err)
	}
	return nil
}

func (s *ListingService) requireOwner(listingID, callerID string) error {
	if listingID == "" || callerID == "" {
		return fmt.Errorf("service: %w - missing listingID or callerID", marketerrors.ErrValidation)
	}

	listing, err := s.repo.GetListingByID(listingID)
	if err != nil {
		return fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}
	if listing.SellerID != callerID {
		return fmt.Errorf("service: user %s on listing %s: %w", callerID, listingID, marketerrors.ErrNotOwner)
	}
	return nil
}
