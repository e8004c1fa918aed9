package repository

import (
	"time"

	model "nearmarket/internal/models"
)

//go:generate mockgen -destination=mock_repository.go -package=repository nearmarket/internal/repository MarketDB

// UserStore is the persistence surface for user accounts and profiles.
type UserStore interface {
	CreateUser(u model.User) error
	GetUserByID(id string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
	UpdateUser(u model.User) error
}

// ListingStore is the persistence surface for listings.
type ListingStore interface {
	CreateListing(l model.Listing) error
	GetListingByID(id string) (model.Listing, error)
	GetListingsBySeller(sellerID string) ([]model.Listing, error)
	// GetActiveListingsExcluding returns all active listings not owned by
	// sellerID. Used by the nearby ranking.
	GetActiveListingsExcluding(sellerID string) ([]model.Listing, error)
	UpdateListingStatus(id, status string) error
	// AppendListingImage adds an uploaded image URL to the listing's ordered
	// image list.
	AppendListingImage(id, imageURL string) error
	// DeleteListing removes the listing together with its offers and archive
	// entries.
	DeleteListing(id string) error
}

// OfferStore is the persistence surface for offers.
type OfferStore interface {
	CreateOffer(o model.Offer) error
	GetOfferByID(id string) (model.Offer, error)
	// HasPendingOffer reports whether the buyer already has a pending offer
	// against the listing.
	HasPendingOffer(listingID, buyerID string) (bool, error)
	// TransitionOffer atomically moves an offer from one status to another.
	// It fails with ErrOfferNotPending when the offer exists but is no longer
	// in the from status, so concurrent responders race safely.
	TransitionOffer(offerID, from, to string, at time.Time) (model.Offer, error)
	GetOffersByListing(listingID string) ([]model.Offer, error)
	GetOffersByBuyer(buyerID string) ([]model.Offer, error)
}

// ChatStore is the persistence surface for chats and their messages.
type ChatStore interface {
	// GetOrCreateChat atomically looks up or inserts the chat for the
	// (listing, buyer, seller) triple. The bool reports whether a new chat
	// was created.
	GetOrCreateChat(c model.Chat) (model.Chat, bool, error)
	GetChatByID(id string) (model.Chat, error)
	GetChatsByUser(userID string) ([]model.Chat, error)
	TouchChat(chatID string, at time.Time) error
	CreateMessage(m model.Message) error
	GetMessagesByChat(chatID string) ([]model.Message, error)
	// MarkMessagesRead flips is_read on every unread message in the chat not
	// authored by viewerID and returns how many were flipped.
	MarkMessagesRead(chatID, viewerID string) (int64, error)
}

// ArchiveStore is the persistence surface for saved listings.
type ArchiveStore interface {
	SaveArchiveEntry(e model.ArchiveEntry) error
	RemoveArchiveEntry(userID, listingID string) error
	GetArchivedListings(userID string) ([]model.Listing, error)
}

// MarketDB aggregates every store the marketplace services depend on.
type MarketDB interface {
	UserStore
	ListingStore
	OfferStore
	ChatStore
	ArchiveStore
}
