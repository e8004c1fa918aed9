package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"nearmarket/internal/marketerrors"
	model "nearmarket/internal/models"
)

// Open connects to Postgres with the quiet gorm configuration used across
// the service.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
}

// GormRepo is the Postgres-backed implementation of MarketDB.
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo creates a GormRepo and migrates the schema, including the
// unique chat-triple index backing atomic chat creation.
func NewGormRepo(db *gorm.DB) (*GormRepo, error) {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Listing{},
		&model.Offer{},
		&model.Chat{},
		&model.Message{},
		&model.ArchiveEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &GormRepo{db: db}, nil
}

// CreateUser inserts a new user, enforcing email uniqueness
func (r *GormRepo) CreateUser(u model.User) error {
	if err := r.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create user %s: %w", u.Email, marketerrors.ErrEmailTaken)
		}
		return fmt.Errorf("create user %s: %w", u.Email, err)
	}
	return nil
}

// GetUserByID returns the user with the given id
func (r *GormRepo) GetUserByID(id string) (model.User, error) {
	var u model.User
	if err := r.db.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user %s: %w", id, marketerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

// GetUserByEmail returns the user registered under the given email
func (r *GormRepo) GetUserByEmail(email string) (model.User, error) {
	var u model.User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user by email %s: %w", email, marketerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, err)
	}
	return u, nil
}

// UpdateUser overwrites an existing user row
func (r *GormRepo) UpdateUser(u model.User) error {
	res := r.db.Model(&model.User{}).Where("user_id = ?", u.UserID).Select("*").Omit("user_id", "created_at").Updates(u)
	if res.Error != nil {
		return fmt.Errorf("update user %s: %w", u.UserID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user %s: %w", u.UserID, marketerrors.ErrUserNotFound)
	}
	return nil
}

// CreateListing inserts a new listing
func (r *GormRepo) CreateListing(l model.Listing) error {
	if err := r.db.Create(&l).Error; err != nil {
		return fmt.Errorf("create listing %s: %w", l.ListingID, err)
	}
	return nil
}

// GetListingByID returns the listing with the given id
func (r *GormRepo) GetListingByID(id string) (model.Listing, error) {
	var l model.Listing
	if err := r.db.First(&l, "listing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Listing{}, fmt.Errorf("get listing %s: %w", id, marketerrors.ErrListingNotFound)
		}
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	return l, nil
}

// GetListingsBySeller returns all listings owned by a seller, newest first
func (r *GormRepo) GetListingsBySeller(sellerID string) ([]model.Listing, error) {
	var out []model.Listing
	if err := r.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("get listings for seller %s: %w", sellerID, err)
	}
	return out, nil
}

// GetActiveListingsExcluding returns active listings not owned by sellerID
func (r *GormRepo) GetActiveListingsExcluding(sellerID string) ([]model.Listing, error) {
	var out []model.Listing
	if err := r.db.Where("status = ? AND seller_id <> ?", model.ListingActive, sellerID).
		Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("get active listings: %w", err)
	}
	return out, nil
}

// UpdateListingStatus sets a listing's status
func (r *GormRepo) UpdateListingStatus(id, status string) error {
	res := r.db.Model(&model.Listing{}).Where("listing_id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return fmt.Errorf("update listing %s status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update listing %s status: %w", id, marketerrors.ErrListingNotFound)
	}
	return nil
}

// AppendListingImage adds an image URL to a listing's ordered image list.
// Read-modify-write inside a transaction keeps the order stable.
func (r *GormRepo) AppendListingImage(id, imageURL string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var l model.Listing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&l, "listing_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("append image to listing %s: %w", id, marketerrors.ErrListingNotFound)
			}
			return fmt.Errorf("append image to listing %s: %w", id, err)
		}
		l.Images = append(l.Images, imageURL)
		l.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&model.Listing{}).Where("listing_id = ?", id).
			Updates(map[string]any{"images": l.Images, "updated_at": l.UpdatedAt}).Error; err != nil {
			return fmt.Errorf("append image to listing %s: %w", id, err)
		}
		return nil
	})
}

// DeleteListing removes the listing with its offers and archive entries in
// one transaction
func (r *GormRepo) DeleteListing(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Listing{}, "listing_id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete listing %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete listing %s: %w", id, marketerrors.ErrListingNotFound)
		}
		if err := tx.Delete(&model.Offer{}, "listing_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete offers for listing %s: %w", id, err)
		}
		if err := tx.Delete(&model.ArchiveEntry{}, "listing_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete archive entries for listing %s: %w", id, err)
		}
		return nil
	})
}

// CreateOffer inserts a new offer
func (r *GormRepo) CreateOffer(o model.Offer) error {
	if err := r.db.Create(&o).Error; err != nil {
		return fmt.Errorf("create offer %s: %w", o.OfferID, err)
	}
	return nil
}

// GetOfferByID returns the offer with the given id
func (r *GormRepo) GetOfferByID(id string) (model.Offer, error) {
	var o model.Offer
	if err := r.db.First(&o, "offer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Offer{}, fmt.Errorf("get offer %s: %w", id, marketerrors.ErrOfferNotFound)
		}
		return model.Offer{}, fmt.Errorf("get offer %s: %w", id, err)
	}
	return o, nil
}

// HasPendingOffer reports whether the buyer already has a pending offer on the listing
func (r *GormRepo) HasPendingOffer(listingID, buyerID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Offer{}).
		Where("listing_id = ? AND buyer_id = ? AND status = ?", listingID, buyerID, model.OfferPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check pending offer for listing %s: %w", listingID, err)
	}
	return count > 0, nil
}

// TransitionOffer moves an offer between statuses with a single conditional
// UPDATE, so only one concurrent responder can win the race.
func (r *GormRepo) TransitionOffer(offerID, from, to string, at time.Time) (model.Offer, error) {
	res := r.db.Model(&model.Offer{}).
		Where("offer_id = ? AND status = ?", offerID, from).
		Updates(map[string]any{"status": to, "updated_at": at})
	if res.Error != nil {
		return model.Offer{}, fmt.Errorf("transition offer %s: %w", offerID, res.Error)
	}
	if res.RowsAffected == 0 {
		o, err := r.GetOfferByID(offerID)
		if err != nil {
			return model.Offer{}, err
		}
		return model.Offer{}, fmt.Errorf("transition offer %s: already %s: %w", offerID, o.Status, marketerrors.ErrOfferNotPending)
	}
	return r.GetOfferByID(offerID)
}

// GetOffersByListing returns all offers against a listing, newest first
func (r *GormRepo) GetOffersByListing(listingID string) ([]model.Offer, error) {
	var out []model.Offer
	if err := r.db.Where("listing_id = ?", listingID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("get offers for listing %s: %w", listingID, err)
	}
	return out, nil
}

// GetOffersByBuyer returns all offers placed by a buyer, newest first
func (r *GormRepo) GetOffersByBuyer(buyerID string) ([]model.Offer, error) {
	var out []model.Offer
	if err := r.db.Where("buyer_id = ?", buyerID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("get offers for buyer %s: %w", buyerID, err)
	}
	return out, nil
}

// GetOrCreateChat upserts the chat for the (listing, buyer, seller) triple.
// The insert does nothing on conflict with the unique triple index, making
// the get-or-create atomic under concurrency.
func (r *GormRepo) GetOrCreateChat(c model.Chat) (model.Chat, bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "listing_id"}, {Name: "buyer_id"}, {Name: "seller_id"}},
		DoNothing: true,
	}).Create(&c)
	if res.Error != nil {
		return model.Chat{}, false, fmt.Errorf("get or create chat for listing %s: %w", c.ListingID, res.Error)
	}
	created := res.RowsAffected > 0

	var out model.Chat
	err := r.db.First(&out, "listing_id = ? AND buyer_id = ? AND seller_id = ?",
		c.ListingID, c.BuyerID, c.SellerID).Error
	if err != nil {
		return model.Chat{}, false, fmt.Errorf("get or create chat for listing %s: %w", c.ListingID, err)
	}
	return out, created, nil
}

// GetChatByID returns the chat with the given id
func (r *GormRepo) GetChatByID(id string) (model.Chat, error) {
	var c model.Chat
	if err := r.db.First(&c, "chat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Chat{}, fmt.Errorf("get chat %s: %w", id, marketerrors.ErrChatNotFound)
		}
		return model.Chat{}, fmt.Errorf("get chat %s: %w", id, err)
	}
	return c, nil
}

// GetChatsByUser returns every chat the user participates in, most recently
// active first
func (r *GormRepo) GetChatsByUser(userID string) ([]model.Chat, error) {
	var out []model.Chat
	err := r.db.Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("last_message_at DESC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("get chats for user %s: %w", userID, err)
	}
	return out, nil
}

// TouchChat bumps a chat's last_message_at
func (r *GormRepo) TouchChat(chatID string, at time.Time) error {
	res := r.db.Model(&model.Chat{}).Where("chat_id = ?", chatID).Update("last_message_at", at)
	if res.Error != nil {
		return fmt.Errorf("touch chat %s: %w", chatID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("touch chat %s: %w", chatID, marketerrors.ErrChatNotFound)
	}
	return nil
}

// CreateMessage appends a message to a chat's log
func (r *GormRepo) CreateMessage(m model.Message) error {
	if err := r.db.Create(&m).Error; err != nil {
		return fmt.Errorf("create message in chat %s: %w", m.ChatID, err)
	}
	return nil
}

// GetMessagesByChat returns a chat's full message log, oldest first
func (r *GormRepo) GetMessagesByChat(chatID string) ([]model.Message, error) {
	var out []model.Message
	if err := r.db.Where("chat_id = ?", chatID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("get messages for chat %s: %w", chatID, err)
	}
	return out, nil
}

// MarkMessagesRead flips is_read on unread messages not authored by viewerID
func (r *GormRepo) MarkMessagesRead(chatID, viewerID string) (int64, error) {
	res := r.db.Model(&model.Message{}).
		Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, viewerID, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("mark messages read in chat %s: %w", chatID, res.Error)
	}
	return res.RowsAffected, nil
}

// SaveArchiveEntry upserts a saved-listing marker; saving twice is a no-op
func (r *GormRepo) SaveArchiveEntry(e model.ArchiveEntry) error {
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("archive listing %s: %w", e.ListingID, err)
	}
	return nil
}

// RemoveArchiveEntry deletes a saved-listing marker
func (r *GormRepo) RemoveArchiveEntry(userID, listingID string) error {
	err := r.db.Delete(&model.ArchiveEntry{}, "user_id = ? AND listing_id = ?", userID, listingID).Error
	if err != nil {
		return fmt.Errorf("unarchive listing %s: %w", listingID, err)
	}
	return nil
}

// GetArchivedListings returns the listings a user has saved, most recently
// saved first
func (r *GormRepo) GetArchivedListings(userID string) ([]model.Listing, error) {
	var out []model.Listing
	err := r.db.Model(&model.Listing{}).
		Joins("JOIN archive_entries ON archive_entries.listing_id = listings.listing_id").
		Where("archive_entries.user_id = ?", userID).
		Order("archive_entries.created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("get archived listings for user %s: %w", userID, err)
	}
	return out, nil
}
