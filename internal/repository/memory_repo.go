package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"nearmarket/internal/marketerrors"
	model "nearmarket/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB,
// used in tests and when no database is configured.
type MemoryRepo struct {
	mu       sync.RWMutex
	users    map[string]model.User           // key: userID
	listings map[string]model.Listing        // key: listingID
	offers   map[string]model.Offer          // key: offerID
	chats    map[string]model.Chat           // key: chatID
	messages map[string][]model.Message      // key: chatID -> ordered messages
	archive  map[string]map[string]time.Time // key: userID -> listingID -> saved at
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:    make(map[string]model.User),
		listings: make(map[string]model.Listing),
		offers:   make(map[string]model.Offer),
		chats:    make(map[string]model.Chat),
		messages: make(map[string][]model.Message),
		archive:  make(map[string]map[string]time.Time),
	}
}

// CreateUser stores a new user, enforcing email uniqueness
func (r *MemoryRepo) CreateUser(u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return fmt.Errorf("create user %s: %w", u.Email, marketerrors.ErrEmailTaken)
		}
	}
	r.users[u.UserID] = u
	return nil
}

// GetUserByID returns the user with the given id
func (r *MemoryRepo) GetUserByID(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", id, marketerrors.ErrUserNotFound)
	}
	return u, nil
}

// GetUserByEmail returns the user registered under the given email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user by email %s: %w", email, marketerrors.ErrUserNotFound)
}

// UpdateUser overwrites an existing user row
func (r *MemoryRepo) UpdateUser(u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.UserID]; !ok {
		return fmt.Errorf("update user %s: %w", u.UserID, marketerrors.ErrUserNotFound)
	}
	r.users[u.UserID] = u
	return nil
}

// CreateListing stores a new listing
func (r *MemoryRepo) CreateListing(l model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listings[l.ListingID] = l
	return nil
}

// GetListingByID returns the listing with the given id
func (r *MemoryRepo) GetListingByID(id string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return l, nil
}

// GetListingsBySeller returns all listings owned by a seller
func (r *MemoryRepo) GetListingsBySeller(sellerID string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Listing
	for _, l := range r.listings {
		if l.SellerID == sellerID {
			out = append(out, l)
		}
	}
	sortListingsNewestFirst(out)
	return out, nil
}

// GetActiveListingsExcluding returns active listings not owned by sellerID
func (r *MemoryRepo) GetActiveListingsExcluding(sellerID string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Listing
	for _, l := range r.listings {
		if l.Status == model.ListingActive && l.SellerID != sellerID {
			out = append(out, l)
		}
	}
	sortListingsNewestFirst(out)
	return out, nil
}

// UpdateListingStatus sets a listing's status
func (r *MemoryRepo) UpdateListingStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("update listing %s status: %w", id, marketerrors.ErrListingNotFound)
	}
	l.Status = status
	l.UpdatedAt = time.Now().UTC()
	r.listings[id] = l
	return nil
}

// AppendListingImage adds an image URL to a listing's ordered image list
func (r *MemoryRepo) AppendListingImage(id, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("append image to listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	l.Images = append(l.Images, imageURL)
	l.UpdatedAt = time.Now().UTC()
	r.listings[id] = l
	return nil
}

// DeleteListing removes a listing with its offers and archive entries
func (r *MemoryRepo) DeleteListing(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[id]; !ok {
		return fmt.Errorf("delete listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	delete(r.listings, id)

	for offerID, o := range r.offers {
		if o.ListingID == id {
			delete(r.offers, offerID)
		}
	}
	for _, saved := range r.archive {
		delete(saved, id)
	}
	return nil
}

// CreateOffer stores a new offer
func (r *MemoryRepo) CreateOffer(o model.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[o.ListingID]; !ok {
		return fmt.Errorf("create offer for listing %s: %w", o.ListingID, marketerrors.ErrListingNotFound)
	}
	r.offers[o.OfferID] = o
	return nil
}

// GetOfferByID returns the offer with the given id
func (r *MemoryRepo) GetOfferByID(id string) (model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.offers[id]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", id, marketerrors.ErrOfferNotFound)
	}
	return o, nil
}

// HasPendingOffer reports whether the buyer already has a pending offer on the listing
func (r *MemoryRepo) HasPendingOffer(listingID, buyerID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.offers {
		if o.ListingID == listingID && o.BuyerID == buyerID && o.Status == model.OfferPending {
			return true, nil
		}
	}
	return false, nil
}

// TransitionOffer atomically moves an offer between statuses. The whole
// check-and-set happens under the write lock so only one concurrent caller
// can win the pending -> terminal race.
func (r *MemoryRepo) TransitionOffer(offerID, from, to string, at time.Time) (model.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("transition offer %s: %w", offerID, marketerrors.ErrOfferNotFound)
	}
	if o.Status != from {
		return model.Offer{}, fmt.Errorf("transition offer %s: already %s: %w", offerID, o.Status, marketerrors.ErrOfferNotPending)
	}
	o.Status = to
	o.UpdatedAt = at
	r.offers[offerID] = o
	return o, nil
}

// GetOffersByListing returns all offers against a listing, newest first
func (r *MemoryRepo) GetOffersByListing(listingID string) ([]model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Offer
	for _, o := range r.offers {
		if o.ListingID == listingID {
			out = append(out, o)
		}
	}
	sortOffersNewestFirst(out)
	return out, nil
}

// GetOffersByBuyer returns all offers placed by a buyer, newest first
func (r *MemoryRepo) GetOffersByBuyer(buyerID string) ([]model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Offer
	for _, o := range r.offers {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	sortOffersNewestFirst(out)
	return out, nil
}

// GetOrCreateChat looks up or inserts the chat for the (listing, buyer,
// seller) triple under a single write lock, so concurrent acceptors cannot
// create duplicates.
func (r *MemoryRepo) GetOrCreateChat(c model.Chat) (model.Chat, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.chats {
		if existing.ListingID == c.ListingID && existing.BuyerID == c.BuyerID && existing.SellerID == c.SellerID {
			return existing, false, nil
		}
	}
	r.chats[c.ChatID] = c
	return c, true, nil
}

// GetChatByID returns the chat with the given id
func (r *MemoryRepo) GetChatByID(id string) (model.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.chats[id]
	if !ok {
		return model.Chat{}, fmt.Errorf("get chat %s: %w", id, marketerrors.ErrChatNotFound)
	}
	return c, nil
}

// GetChatsByUser returns every chat the user participates in, most recently
// active first
func (r *MemoryRepo) GetChatsByUser(userID string) ([]model.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Chat
	for _, c := range r.chats {
		if c.BuyerID == userID || c.SellerID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out, nil
}

// TouchChat bumps a chat's last_message_at
func (r *MemoryRepo) TouchChat(chatID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.chats[chatID]
	if !ok {
		return fmt.Errorf("touch chat %s: %w", chatID, marketerrors.ErrChatNotFound)
	}
	c.LastMessageAt = at
	r.chats[chatID] = c
	return nil
}

// CreateMessage appends a message to a chat's log
func (r *MemoryRepo) CreateMessage(m model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chats[m.ChatID]; !ok {
		return fmt.Errorf("create message in chat %s: %w", m.ChatID, marketerrors.ErrChatNotFound)
	}
	r.messages[m.ChatID] = append(r.messages[m.ChatID], m)
	return nil
}

// GetMessagesByChat returns a chat's full message log, oldest first
func (r *MemoryRepo) GetMessagesByChat(chatID string) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := append([]model.Message(nil), r.messages[chatID]...)
	sort.Slice(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

// MarkMessagesRead flips is_read on unread messages not authored by viewerID
func (r *MemoryRepo) MarkMessagesRead(chatID, viewerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var flipped int64
	msgs := r.messages[chatID]
	for i := range msgs {
		if msgs[i].SenderID != viewerID && !msgs[i].IsRead {
			msgs[i].IsRead = true
			flipped++
		}
	}
	return flipped, nil
}

// SaveArchiveEntry stores a saved-listing marker; saving twice is a no-op
func (r *MemoryRepo) SaveArchiveEntry(e model.ArchiveEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[e.ListingID]; !ok {
		return fmt.Errorf("archive listing %s: %w", e.ListingID, marketerrors.ErrListingNotFound)
	}
	if r.archive[e.UserID] == nil {
		r.archive[e.UserID] = make(map[string]time.Time)
	}
	if _, ok := r.archive[e.UserID][e.ListingID]; !ok {
		r.archive[e.UserID][e.ListingID] = e.CreatedAt
	}
	return nil
}

// RemoveArchiveEntry deletes a saved-listing marker
func (r *MemoryRepo) RemoveArchiveEntry(userID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.archive[userID], listingID)
	return nil
}

// GetArchivedListings returns the listings a user has saved, most recently
// saved first
func (r *MemoryRepo) GetArchivedListings(userID string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	saved := r.archive[userID]
	type entry struct {
		listing model.Listing
		at      time.Time
	}
	var entries []entry
	for listingID, at := range saved {
		if l, ok := r.listings[listingID]; ok {
			entries = append(entries, entry{listing: l, at: at})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})

	out := make([]model.Listing, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.listing)
	}
	return out, nil
}

func sortListingsNewestFirst(listings []model.Listing) {
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
}

func sortOffersNewestFirst(offers []model.Offer) {
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].CreatedAt.After(offers[j].CreatedAt)
	})
}
