package repository

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nearmarket/internal/marketerrors"
	model "nearmarket/internal/models"

	"github.com/stretchr/testify/require"
)

func seedListing(t *testing.T, repo *MemoryRepo, id, sellerID string) model.Listing {
	t.Helper()
	l := model.Listing{
		ListingID: id,
		SellerID:  sellerID,
		Title:     "Listing " + id,
		Price:     50,
		Status:    model.ListingActive,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateListing(l))
	return l
}

// Tests user storage and email uniqueness
func TestMemoryRepo_Users(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	require.NoError(t, repo.CreateUser(model.User{UserID: "user1", Email: "a@example.com"}))

	err := repo.CreateUser(model.User{UserID: "user2", Email: "a@example.com"})
	require.ErrorIs(t, err, marketerrors.ErrEmailTaken)

	u, err := repo.GetUserByEmail("a@example.com")
	require.NoError(t, err)
	require.Equal(t, "user1", u.UserID)

	_, err = repo.GetUserByID("missing")
	require.ErrorIs(t, err, marketerrors.ErrUserNotFound)

	err = repo.UpdateUser(model.User{UserID: "missing"})
	require.ErrorIs(t, err, marketerrors.ErrUserNotFound)
}

// Tests TransitionOffer allows exactly one winner under concurrency
func TestMemoryRepo_TransitionOffer_SingleWinner(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedListing(t, repo, "listing1", "seller1")
	require.NoError(t, repo.CreateOffer(model.Offer{
		OfferID:   "offer1",
		ListingID: "listing1",
		BuyerID:   "buyer1",
		SellerID:  "seller1",
		Status:    model.OfferPending,
	}))

	const racers = 16
	var wins, conflicts atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := repo.TransitionOffer("offer1", model.OfferPending, model.OfferAccepted, time.Now().UTC())
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, marketerrors.ErrOfferNotPending):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), wins.Load())
	require.Equal(t, int64(racers-1), conflicts.Load())

	o, err := repo.GetOfferByID("offer1")
	require.NoError(t, err)
	require.Equal(t, model.OfferAccepted, o.Status)
}

// Tests TransitionOffer error cases
func TestMemoryRepo_TransitionOffer_Errors(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedListing(t, repo, "listing1", "seller1")

	_, err := repo.TransitionOffer("missing", model.OfferPending, model.OfferAccepted, time.Now().UTC())
	require.ErrorIs(t, err, marketerrors.ErrOfferNotFound)

	require.NoError(t, repo.CreateOffer(model.Offer{
		OfferID:   "offer1",
		ListingID: "listing1",
		BuyerID:   "buyer1",
		Status:    model.OfferRejected,
	}))
	_, err = repo.TransitionOffer("offer1", model.OfferPending, model.OfferAccepted, time.Now().UTC())
	require.ErrorIs(t, err, marketerrors.ErrOfferNotPending)
}

// Tests HasPendingOffer scoping
func TestMemoryRepo_HasPendingOffer(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedListing(t, repo, "listing1", "seller1")
	require.NoError(t, repo.CreateOffer(model.Offer{
		OfferID: "offer1", ListingID: "listing1", BuyerID: "buyer1", Status: model.OfferPending,
	}))
	require.NoError(t, repo.CreateOffer(model.Offer{
		OfferID: "offer2", ListingID: "listing1", BuyerID: "buyer2", Status: model.OfferRejected,
	}))

	pending, err := repo.HasPendingOffer("listing1", "buyer1")
	require.NoError(t, err)
	require.True(t, pending)

	pending, err = repo.HasPendingOffer("listing1", "buyer2")
	require.NoError(t, err)
	require.False(t, pending, "terminal offers do not count as pending")

	pending, err = repo.HasPendingOffer("listing2", "buyer1")
	require.NoError(t, err)
	require.False(t, pending)
}

// Tests GetOrCreateChat deduplicates the triple under concurrency
func TestMemoryRepo_GetOrCreateChat_Deduplicates(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	const racers = 16
	var created atomic.Int64
	chatIDs := make([]string, racers)
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			c, wasCreated, err := repo.GetOrCreateChat(model.Chat{
				ChatID:    "candidate" + string(rune('a'+i)),
				ListingID: "listing1",
				BuyerID:   "buyer1",
				SellerID:  "seller1",
			})
			errs[i] = err
			if wasCreated {
				created.Add(1)
			}
			chatIDs[i] = c.ChatID
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, int64(1), created.Load())
	for _, id := range chatIDs {
		require.Equal(t, chatIDs[0], id, "every caller must land on the same chat")
	}

	// A different triple gets its own chat.
	_, wasCreated, err := repo.GetOrCreateChat(model.Chat{
		ChatID: "other", ListingID: "listing1", BuyerID: "buyer2", SellerID: "seller1",
	})
	require.NoError(t, err)
	require.True(t, wasCreated)
}

// Tests MarkMessagesRead flips only the counterparty's unread messages
func TestMemoryRepo_MarkMessagesRead(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, _, err := repo.GetOrCreateChat(model.Chat{
		ChatID: "chat1", ListingID: "listing1", BuyerID: "buyer1", SellerID: "seller1",
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, repo.CreateMessage(model.Message{
		MessageID: "msg1", ChatID: "chat1", SenderID: "seller1", Content: "hi", CreatedAt: now,
	}))
	require.NoError(t, repo.CreateMessage(model.Message{
		MessageID: "msg2", ChatID: "chat1", SenderID: "buyer1", Content: "hello", CreatedAt: now.Add(time.Second),
	}))
	require.NoError(t, repo.CreateMessage(model.Message{
		MessageID: "msg3", ChatID: "chat1", SenderID: "seller1", Content: "still there?", CreatedAt: now.Add(2 * time.Second), IsRead: true,
	}))

	flipped, err := repo.MarkMessagesRead("chat1", "buyer1")
	require.NoError(t, err)
	require.Equal(t, int64(1), flipped, "only msg1 was unread and not authored by the viewer")

	msgs, err := repo.GetMessagesByChat("chat1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	require.True(t, msgs[0].IsRead)
	require.False(t, msgs[1].IsRead, "the viewer's own message stays untouched")
	require.True(t, msgs[2].IsRead)

	// Second pass finds nothing left to flip.
	flipped, err = repo.MarkMessagesRead("chat1", "buyer1")
	require.NoError(t, err)
	require.Zero(t, flipped)
}

// Tests message ordering oldest-first
func TestMemoryRepo_GetMessagesByChat_Ordering(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, _, err := repo.GetOrCreateChat(model.Chat{
		ChatID: "chat1", ListingID: "listing1", BuyerID: "buyer1", SellerID: "seller1",
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, repo.CreateMessage(model.Message{MessageID: "late", ChatID: "chat1", CreatedAt: now.Add(time.Minute)}))
	require.NoError(t, repo.CreateMessage(model.Message{MessageID: "early", ChatID: "chat1", CreatedAt: now}))

	msgs, err := repo.GetMessagesByChat("chat1")
	require.NoError(t, err)
	require.Equal(t, []string{"early", "late"}, []string{msgs[0].MessageID, msgs[1].MessageID})
}

// Tests DeleteListing cascades to offers and archive entries
func TestMemoryRepo_DeleteListing_Cascades(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedListing(t, repo, "listing1", "seller1")
	require.NoError(t, repo.CreateOffer(model.Offer{
		OfferID: "offer1", ListingID: "listing1", BuyerID: "buyer1", Status: model.OfferPending,
	}))
	require.NoError(t, repo.SaveArchiveEntry(model.ArchiveEntry{
		UserID: "buyer1", ListingID: "listing1", CreatedAt: time.Now().UTC(),
	}))

	require.NoError(t, repo.DeleteListing("listing1"))

	_, err := repo.GetListingByID("listing1")
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)

	_, err = repo.GetOfferByID("offer1")
	require.ErrorIs(t, err, marketerrors.ErrOfferNotFound)

	saved, err := repo.GetArchivedListings("buyer1")
	require.NoError(t, err)
	require.Empty(t, saved)
}

// Tests archive save/remove/list
func TestMemoryRepo_Archive(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedListing(t, repo, "listing1", "seller1")
	seedListing(t, repo, "listing2", "seller1")

	now := time.Now().UTC()
	require.NoError(t, repo.SaveArchiveEntry(model.ArchiveEntry{UserID: "buyer1", ListingID: "listing1", CreatedAt: now}))
	require.NoError(t, repo.SaveArchiveEntry(model.ArchiveEntry{UserID: "buyer1", ListingID: "listing2", CreatedAt: now.Add(time.Second)}))

	// Saving the same listing again is a no-op, not an error.
	require.NoError(t, repo.SaveArchiveEntry(model.ArchiveEntry{UserID: "buyer1", ListingID: "listing1", CreatedAt: now.Add(time.Minute)}))

	err := repo.SaveArchiveEntry(model.ArchiveEntry{UserID: "buyer1", ListingID: "missing", CreatedAt: now})
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)

	saved, err := repo.GetArchivedListings("buyer1")
	require.NoError(t, err)
	require.Len(t, saved, 2)
	require.Equal(t, "listing2", saved[0].ListingID, "most recently saved first")

	require.NoError(t, repo.RemoveArchiveEntry("buyer1", "listing1"))
	saved, err = repo.GetArchivedListings("buyer1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
}

// Tests active listing filtering and ordering
func TestMemoryRepo_GetActiveListingsExcluding(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	now := time.Now().UTC()
	require.NoError(t, repo.CreateListing(model.Listing{ListingID: "mine", SellerID: "viewer", Status: model.ListingActive, CreatedAt: now}))
	require.NoError(t, repo.CreateListing(model.Listing{ListingID: "sold", SellerID: "other", Status: model.ListingSold, CreatedAt: now}))
	require.NoError(t, repo.CreateListing(model.Listing{ListingID: "older", SellerID: "other", Status: model.ListingActive, CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.CreateListing(model.Listing{ListingID: "newer", SellerID: "other", Status: model.ListingActive, CreatedAt: now}))

	listings, err := repo.GetActiveListingsExcluding("viewer")
	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.Equal(t, "newer", listings[0].ListingID)
	require.Equal(t, "older", listings[1].ListingID)
}

// Tests AppendListingImage preserves order
func TestMemoryRepo_AppendListingImage(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	seedListing(t, repo, "listing1", "seller1")

	require.NoError(t, repo.AppendListingImage("listing1", "https://img/1"))
	require.NoError(t, repo.AppendListingImage("listing1", "https://img/2"))

	l, err := repo.GetListingByID("listing1")
	require.NoError(t, err)
	require.Equal(t, []string{"https://img/1", "https://img/2"}, l.Images)

	err = repo.AppendListingImage("missing", "https://img/3")
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)
}
