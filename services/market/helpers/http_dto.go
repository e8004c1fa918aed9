package helpers

import model "nearmarket/internal/models"

// Request/Response DTOs

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name"`
	Bio         *string `json:"bio"`
	IsBuyer     *bool   `json:"is_buyer"`
	IsSeller    *bool   `json:"is_seller"`
	IsOnboarded *bool   `json:"is_onboarded"`
}

type SaveLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type CreateListingRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"required,gt=0"`
	Category    string         `json:"category"`
	Images      []string       `json:"images"`
	Location    model.Location `json:"location"`
}

type UpdateListingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active sold archived"`
}

type CreateOfferRequest struct {
	ListingID  string  `json:"listing_id" binding:"required"`
	OfferPrice float64 `json:"offer_price" binding:"required,gt=0"`
	Message    string  `json:"message"`
}

type RespondOfferRequest struct {
	Action string `json:"action" binding:"required,oneof=accept decline"`
}

type OfferResponse struct {
	OfferID    string  `json:"offer_id"`
	ListingID  string  `json:"listing_id"`
	BuyerID    string  `json:"buyer_id"`
	SellerID   string  `json:"seller_id"`
	OfferPrice float64 `json:"offer_price"`
	Message    string  `json:"message,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

type SendMessageRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type SaveArchiveRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	Fallback bool   `json:"fallback"`
}
