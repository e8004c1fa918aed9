package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nearmarket/internal/marketerrors"
	model "nearmarket/internal/models"
	offer "nearmarket/internal/offerService"
	"nearmarket/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// asUser injects the authenticated user id the way the auth middleware does.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test CreateOfferHandler
func TestCreateOfferHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockOfferServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_offer",
			requestBody: helpers.CreateOfferRequest{
				ListingID:  "listing1",
				OfferPrice: 80,
				Message:    "would you take 80?",
			},
			mockSetup: func(m *MockOfferServiceInterface) {
				m.EXPECT().
					CreateOffer("listing1", "buyer1", 80.0, "would you take 80?").
					Return(model.Offer{
						OfferID:    uuid.NewString(),
						ListingID:  "listing1",
						BuyerID:    "buyer1",
						SellerID:   "seller1",
						OfferPrice: 80,
						Message:    "would you take 80?",
						Status:     model.OfferPending,
						CreatedAt:  now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "offer recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				offerID := data["offer_id"].(string)
				_, parseErr := uuid.Parse(offerID)
				require.NoError(t, parseErr, "OfferID should be a valid UUID")
				require.Equal(t, "listing1", data["listing_id"])
				require.Equal(t, "buyer1", data["buyer_id"])
				require.Equal(t, 80.0, data["offer_price"])
				require.Equal(t, model.OfferPending, data["status"])
				_, timeErr := time.Parse(time.RFC3339, data["created_at"].(string))
				require.NoError(t, timeErr)
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockOfferServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_listing_id",
			requestBody: helpers.CreateOfferRequest{
				OfferPrice: 80,
			},
			mockSetup:      func(m *MockOfferServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "non_positive_price",
			requestBody: helpers.CreateOfferRequest{
				ListingID:  "listing1",
				OfferPrice: 0,
			},
			mockSetup:      func(m *MockOfferServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "duplicate_pending_offer",
			requestBody: helpers.CreateOfferRequest{
				ListingID:  "listing1",
				OfferPrice: 80,
			},
			mockSetup: func(m *MockOfferServiceInterface) {
				m.EXPECT().
					CreateOffer("listing1", "buyer1", 80.0, "").
					Return(model.Offer{}, marketerrors.ErrPendingExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "listing_not_found",
			requestBody: helpers.CreateOfferRequest{
				ListingID:  "missing",
				OfferPrice: 80,
			},
			mockSetup: func(m *MockOfferServiceInterface) {
				m.EXPECT().
					CreateOffer("missing", "buyer1", 80.0, "").
					Return(model.Offer{}, marketerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service_generic_error",
			requestBody: helpers.CreateOfferRequest{
				ListingID:  "listing1",
				OfferPrice: 80,
			},
			mockSetup: func(m *MockOfferServiceInterface) {
				m.EXPECT().
					CreateOffer("listing1", "buyer1", 80.0, "").
					Return(model.Offer{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockOfferServiceInterface(ctrl)
			tc.mockSetup(mockService)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(asUser("buyer1"))
			router.POST("/offers", NewOfferHandler(mockService).CreateOfferHandler)

			w := doJSON(t, router, http.MethodPost, "/offers", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tc.expectedMsg != "" {
				require.Contains(t, resp["message"], tc.expectedMsg)
			}
			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test RespondOfferHandler
func TestRespondOfferHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockOfferServiceInterface)
		expectedStatus int
	}{
		{
			name:        "accept_creates_chat",
			requestBody: helpers.RespondOfferRequest{Action: "accept"},
			mockSetup: func(m *MockOfferServiceInterface) {
				m.EXPECT().
					RespondToOffer("offer1", "accept").
					Return(offer.RespondResult{
						Action:      "accept",
						OfferID:     "offer1",
						ChatID:      "chat1",
						ChatCreated: true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "decline",
			requestBody: helpers.RespondOfferRequest{Action: "decline"},
			mockSetup: func(m *MockOfferServiceInterface) {
				m.EXPECT().
					RespondToOffer("offer1", "decline").
					Return(offer.RespondResult{Action: "decline", OfferID: "offer1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown_action_rejected_by_binding",
			requestBody:    helpers.RespondOfferRequest{Action: "maybe"},
			mockSetup:      func(m *MockOfferServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "already_resolved",
			requestBody: helpers.RespondOfferRequest{Action: "accept"},
			mockSetup: func(m *MockOfferServiceInterface) {
				m.EXPECT().
					RespondToOffer("offer1", "accept").
					Return(offer.RespondResult{}, marketerrors.ErrOfferNotPending)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "offer_not_found",
			requestBody: helpers.RespondOfferRequest{Action: "accept"},
			mockSetup: func(m *MockOfferServiceInterface) {
				m.EXPECT().
					RespondToOffer("offer1", "accept").
					Return(offer.RespondResult{}, marketerrors.ErrOfferNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockOfferServiceInterface(ctrl)
			tc.mockSetup(mockService)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(asUser("seller1"))
			router.POST("/offers/:offer_id/respond", NewOfferHandler(mockService).RespondOfferHandler)

			w := doJSON(t, router, http.MethodPost, "/offers/offer1/respond", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, "offer1", data["offer_id"])
			}
		})
	}
}

// Test MyOffersHandler empty-slice shape
func TestMyOffersHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockOfferServiceInterface(ctrl)
	mockService.EXPECT().GetOffersByBuyer("buyer1").Return(nil, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser("buyer1"))
	router.GET("/me/offers", NewOfferHandler(mockService).MyOffersHandler)

	w := doJSON(t, router, http.MethodGet, "/me/offers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, []any{}, resp["data"], "no offers serializes as an empty list, not null")
}
