package archive

import (
	"fmt"
	"time"

	"nearmarket/internal/marketerrors"
	"nearmarket/internal/models"
	"nearmarket/internal/repository"
)

// ArchiveService manages a user's saved listings.
type ArchiveService struct {
	repo repository.MarketDB
}

// NewArchiveService creates a new ArchiveService instance
func NewArchiveService(repo repository.MarketDB) *ArchiveService {
	return &ArchiveService{
		repo: repo,
	}
}

// Save marks a listing as saved by the user; saving twice is a no-op
func (s *ArchiveService) Save(userID, listingID string) error {
	if userID == "" || listingID == "" {
		return fmt.Errorf("service: %w - missing userID or listingID", marketerrors.ErrValidation)
	}

	err := s.repo.SaveArchiveEntry(models.ArchiveEntry{
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("service: failed to save listing %s for user %s: %w", listingID, userID, err)
	}
	return nil
}

// Remove unsaves a listing for the user
func (s *ArchiveService) Remove(userID, listingID string) error {
	if userID == "" || listingID == "" {
		return fmt.Errorf("service: %w - missing userID or listingID", marketerrors.ErrValidation)
	}

	if err := s.repo.RemoveArchiveEntry(userID, listingID); err != nil {
		return fmt.Errorf("service: failed to unsave listing %s for user %s: %w", listingID, userID, err)
	}
	return nil
}

// List returns the listings the user has saved, most recently saved first
func (s *ArchiveService) List(userID string) ([]models.Listing, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrValidation)
	}

	listings, err := s.repo.GetArchivedListings(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list saved listings for user %s: %w", userID, err)
	}
	return listings, nil
}
