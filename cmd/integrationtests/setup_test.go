package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	archive "nearmarket/internal/archiveService"
	auth "nearmarket/internal/authService"
	chat "nearmarket/internal/chatService"
	listing "nearmarket/internal/listingService"
	"nearmarket/internal/location"
	"nearmarket/internal/notify"
	offer "nearmarket/internal/offerService"
	"nearmarket/internal/repository"
	"nearmarket/internal/server"
	"nearmarket/internal/storage"
	"nearmarket/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter wires the full router on in-memory backends for
// integration testing.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	hub := notify.NewHub()
	tokens := auth.NewTokenManager("integration-test-secret")
	uploads := storage.NewClient(storage.NewMemoryStore(), storage.DefaultRetryPolicy(), "")

	router := server.SetupRouter(server.Deps{
		Auth:          auth.NewAuthService(repo, tokens),
		Listings:      listing.NewListingService(repo),
		Offers:        offer.NewOfferService(repo, hub),
		Chats:         chat.NewChatService(repo, hub),
		Archive:       archive.NewArchiveService(repo),
		Resolver:      location.NewResolver("http://127.0.0.1:1", location.NewMemoryCache()),
		Uploads:       uploads,
		Tokens:        tokens,
		Hub:           hub,
		AvatarBucket:  "avatars",
		ListingBucket: "listings",
	})
	return router, repo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope. token may be empty for public routes.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// SignUpUser registers an account and returns its user id and session token.
func SignUpUser(t *testing.T, router *gin.Engine, email, fullName string) (string, string) {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, "POST", "/auth/signup", "", helpers.SignUpRequest{
		Email:    email,
		Password: "integration-pass",
		FullName: fullName,
	})
	require.Equal(t, 201, w.Code)

	data := resp["data"].(map[string]any)
	token := data["token"].(string)
	userID := data["user"].(map[string]any)["user_id"].(string)
	return userID, token
}

// CreateListing creates a listing for the seller and returns its id.
func CreateListing(t *testing.T, router *gin.Engine, token, title string, price float64) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, "POST", "/listings", token, helpers.CreateListingRequest{
		Title: title,
		Price: price,
	})
	require.Equal(t, 201, w.Code)
	return resp["data"].(map[string]any)["listing_id"].(string)
}
