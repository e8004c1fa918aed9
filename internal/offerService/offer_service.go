package offer

import (
	"fmt"
	"time"

	"nearmarket/internal/marketerrors"
	"nearmarket/internal/models"
	"nearmarket/internal/notify"
	"nearmarket/internal/repository"
	"nearmarket/utils"
)

// Actions accepted by RespondToOffer
const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
)

// RespondResult reports the outcome of responding to an offer. ChatID and
// ChatCreated are only set for accepts.
type RespondResult struct {
	Action      string `json:"action"`
	OfferID     string `json:"offer_id"`
	ChatID      string `json:"chat_id,omitempty"`
	ChatCreated bool   `json:"chat_created,omitempty"`
}

// OfferService owns the offer lifecycle: creation, the one-way
// pending -> accepted|rejected transition, and the chat + system message
// materialized on acceptance.
type OfferService struct {
	repo repository.MarketDB
	hub  *notify.Hub
}

// NewOfferService creates a new OfferService instance
func NewOfferService(repo repository.MarketDB, hub *notify.Hub) *OfferService {
	return &OfferService{
		repo: repo,
		hub:  hub,
	}
}

// CreateOffer validates and records a buyer's offer against a listing. On
// success the listing is also saved to the buyer's archive, best-effort.
func (s *OfferService) CreateOffer(listingID, buyerID string, offerPrice float64, message string) (models.Offer, error) {
	if err := s.validateOffer(listingID, buyerID, offerPrice); err != nil {
		return models.Offer{}, err
	}

	listing, err := s.repo.GetListingByID(listingID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to resolve listing %s: %w", listingID, err)
	}
	if !utils.IsValidID(listing.SellerID) {
		return models.Offer{}, fmt.Errorf("service: %w - listing %s has a malformed seller id", marketerrors.ErrValidation, listingID)
	}
	if listing.SellerID == buyerID {
		return models.Offer{}, fmt.Errorf("service: %w - cannot make an offer on your own listing", marketerrors.ErrValidation)
	}

	pending, err := s.repo.HasPendingOffer(listingID, buyerID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to check pending offers for listing %s: %w", listingID, err)
	}
	if pending {
		return models.Offer{}, fmt.Errorf("service: %w", marketerrors.ErrPendingExists)
	}

	now := time.Now().UTC()
	offer := models.Offer{
		OfferID:    utils.GenerateID(),
		ListingID:  listingID,
		BuyerID:    buyerID,
		SellerID:   listing.SellerID,
		OfferPrice: offerPrice,
		Message:    message,
		Status:     models.OfferPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.CreateOffer(offer); err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to record offer on listing %s by buyer %s: %w", listingID, buyerID, err)
	}

	// Saving to the buyer's archive is supplementary; never fail the offer
	// over it.
	archiveErr := s.repo.SaveArchiveEntry(models.ArchiveEntry{
		UserID:    buyerID,
		ListingID: listingID,
		CreatedAt: now,
	})
	if archiveErr != nil {
		utils.Warn("service: failed to archive listing for buyer", map[string]any{
			"listing_id": listingID,
			"buyer_id":   buyerID,
			"error":      archiveErr.Error(),
		})
	}

	return offer, nil
}

// validateOffer checks input validity before any row is written
func (s *OfferService) validateOffer(listingID, buyerID string, offerPrice float64) error {
	if listingID == "" || buyerID == "" {
		return fmt.Errorf("service: %w - missing listingID or buyerID", marketerrors.ErrValidation)
	}
	if offerPrice <= 0 {
		return fmt.Errorf("service: %w - non-positive offer price", marketerrors.ErrValidation)
	}
	return nil
}

// RespondToOffer moves a pending offer to accepted or rejected. Accepting
// materializes the chat for the (listing, buyer, seller) triple, posts the
// system message and notifies the buyer.
func (s *OfferService) RespondToOffer(offerID, action string) (RespondResult, error) {
	if offerID == "" {
		return RespondResult{}, fmt.Errorf("service: %w - empty offer ID", marketerrors.ErrValidation)
	}

	var target string
	switch action {
	case ActionAccept:
		target = models.OfferAccepted
	case ActionDecline:
		target = models.OfferRejected
	default:
		return RespondResult{}, fmt.Errorf("service: %w - unknown action %q", marketerrors.ErrValidation, action)
	}

	now := time.Now().UTC()
	offer, err := s.repo.TransitionOffer(offerID, models.OfferPending, target, now)
	if err != nil {
		return RespondResult{}, fmt.Errorf("service: failed to respond to offer %s: %w", offerID, err)
	}

	if action == ActionDecline {
		return RespondResult{Action: action, OfferID: offerID}, nil
	}

	chat, created, err := s.repo.GetOrCreateChat(models.Chat{
		ChatID:        utils.GenerateID(),
		ListingID:     offer.ListingID,
		BuyerID:       offer.BuyerID,
		SellerID:      offer.SellerID,
		IsActive:      true,
		LastMessageAt: now,
		CreatedAt:     now,
	})
	if err != nil {
		return RespondResult{}, fmt.Errorf("service: offer %s accepted but chat creation failed: %w", offerID, err)
	}

	system := models.Message{
		MessageID: utils.GenerateID(),
		ChatID:    chat.ChatID,
		SenderID:  offer.SellerID,
		Content:   fmt.Sprintf("Offer accepted! Agreed price: %.2f", offer.OfferPrice),
		CreatedAt: now,
	}
	if err := s.repo.CreateMessage(system); err != nil {
		return RespondResult{}, fmt.Errorf("service: offer %s accepted but system message failed: %w", offerID, err)
	}
	if err := s.repo.TouchChat(chat.ChatID, now); err != nil {
		utils.Warn("service: failed to bump chat activity after acceptance", map[string]any{
			"chat_id": chat.ChatID,
			"error":   err.Error(),
		})
	}

	s.notifyBuyer(offer, chat)

	return RespondResult{
		Action:      action,
		OfferID:     offerID,
		ChatID:      chat.ChatID,
		ChatCreated: created,
	}, nil
}

// notifyBuyer pushes the acceptance event to the buyer. Best-effort and
// in-process; the offer/chat rows remain the source of truth.
func (s *OfferService) notifyBuyer(offer models.Offer, chat models.Chat) {
	payload := map[string]any{
		"offer_id":    offer.OfferID,
		"offer_price": offer.OfferPrice,
	}
	if listing, err := s.repo.GetListingByID(offer.ListingID); err == nil {
		payload["listing_title"] = listing.Title
		if len(listing.Images) > 0 {
			payload["listing_image"] = listing.Images[0]
		}
	}

	s.hub.PublishToUser(offer.BuyerID, notify.Event{
		Type:      notify.EventOfferAccepted,
		ChatID:    chat.ChatID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	})
}

// GetOffersForListing returns all offers against a listing
func (s *OfferService) GetOffersForListing(listingID string) ([]models.Offer, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", marketerrors.ErrValidation)
	}

	offers, err := s.repo.GetOffersByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get offers for listing %s: %w", listingID, err)
	}
	return offers, nil
}

// GetOffersByBuyer returns all offers a buyer has placed
func (s *OfferService) GetOffersByBuyer(buyerID string) ([]models.Offer, error) {
	if buyerID == "" {
		return nil, fmt.Errorf("service: %w - empty buyer ID", marketerrors.ErrValidation)
	}

	offers, err := s.repo.GetOffersByBuyer(buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get offers for buyer %s: %w", buyerID, err)
	}
	return offers, nil
}
