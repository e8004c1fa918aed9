package models

import "time"

// Listing statuses
const (
	ListingActive   = "active"
	ListingSold     = "sold"
	ListingArchived = "archived"
)

// Offer statuses
const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
)

// Location is a point plus its human-readable place labels, stored embedded
// on users and listings.
type Location struct {
	City      string   `json:"city,omitempty"`
	Region    string   `json:"region,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the location carries a usable point.
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// User represents a marketplace participant
type User struct {
	UserID       string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatar_url"`
	Bio          string    `json:"bio"`
	Location     Location  `json:"location" gorm:"embedded;embeddedPrefix:loc_"`
	IsBuyer      bool      `json:"is_buyer"`
	IsSeller     bool      `json:"is_seller"`
	IsOnboarded  bool      `json:"is_onboarded"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Listing represents an item for sale, owned by a seller
type Listing struct {
	ListingID   string    `json:"listing_id" gorm:"primaryKey;column:listing_id"`
	SellerID    string    `json:"seller_id" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	Status      string    `json:"status" gorm:"index;default:active"`
	Location    Location  `json:"location" gorm:"embedded;embeddedPrefix:loc_"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Offer is a buyer's proposed price against a listing. Status moves
// pending -> accepted|rejected, one way.
type Offer struct {
	OfferID    string    `json:"offer_id" gorm:"primaryKey;column:offer_id"`
	ListingID  string    `json:"listing_id" gorm:"index;uniqueIndex:idx_offer_pending,where:status = 'pending'"`
	BuyerID    string    `json:"buyer_id" gorm:"index;uniqueIndex:idx_offer_pending"`
	SellerID   string    `json:"seller_id" gorm:"index"`
	OfferPrice float64   `json:"offer_price"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status" gorm:"index;default:pending"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Chat is the conversation thread created when an offer is accepted.
// Exactly one chat exists per (listing, buyer, seller) triple; the unique
// index backs the atomic get-or-create.
type Chat struct {
	ChatID        string    `json:"chat_id" gorm:"primaryKey;column:chat_id"`
	ListingID     string    `json:"listing_id" gorm:"uniqueIndex:idx_chat_triple"`
	BuyerID       string    `json:"buyer_id" gorm:"uniqueIndex:idx_chat_triple"`
	SellerID      string    `json:"seller_id" gorm:"uniqueIndex:idx_chat_triple"`
	IsActive      bool      `json:"is_active"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// Message is a single chat entry, written by either party or synthesized by
// the system (e.g. the acceptance announcement).
type Message struct {
	MessageID string    `json:"message_id" gorm:"primaryKey;column:message_id"`
	ChatID    string    `json:"chat_id" gorm:"index"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ArchiveEntry marks a listing as saved by a user
type ArchiveEntry struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	ListingID string    `json:"listing_id" gorm:"primaryKey;column:listing_id"`
	CreatedAt time.Time `json:"created_at"`
}
