package listing

import (
	"errors"
	"testing"
	"time"

	"nearmarket/internal/marketerrors"
	model "nearmarket/internal/models"
	"nearmarket/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tests CreateListing
func TestListingService_CreateListing(t *testing.T) {
	tests := []struct {
		name          string
		sellerID      string
		input         CreateListingInput
		mockSetup     func(m *repository.MockMarketDB)
		expectError   bool
		expectedError error
	}{
		{
			name:     "valid_listing",
			sellerID: "seller1",
			input: CreateListingInput{
				Title:       "Road bike",
				Description: "barely used",
				Price:       250,
				Category:    "sports",
				Images:      []string{"https://img/1.jpg"},
			},
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().CreateListing(gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_seller_id",
			sellerID:      "",
			input:         CreateListingInput{Title: "Road bike", Price: 250},
			mockSetup:     func(m *repository.MockMarketDB) {},
			expectError:   true,
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:          "missing_title",
			sellerID:      "seller1",
			input:         CreateListingInput{Price: 250},
			mockSetup:     func(m *repository.MockMarketDB) {},
			expectError:   true,
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:          "non_positive_price",
			sellerID:      "seller1",
			input:         CreateListingInput{Title: "Road bike", Price: 0},
			mockSetup:     func(m *repository.MockMarketDB) {},
			expectError:   true,
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:     "repo_write_fails",
			sellerID: "seller1",
			input:    CreateListingInput{Title: "Road bike", Price: 250},
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().CreateListing(gomock.Any()).Return(errors.New("repo write failed"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockMarketDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewListingService(mockRepo)

			created, err := service.CreateListing(tc.sellerID, tc.input)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, created.ListingID)
			_, parseErr := uuid.Parse(created.ListingID)
			require.NoError(t, parseErr, "ListingID should be a valid UUID")
			require.Equal(t, tc.sellerID, created.SellerID)
			require.Equal(t, tc.input.Title, created.Title)
			require.Equal(t, tc.input.Price, created.Price)
			require.Equal(t, model.ListingActive, created.Status)
			require.WithinDuration(t, time.Now().UTC(), created.CreatedAt, 2*time.Second)
		})
	}
}

// Tests UpdateStatus ownership and status whitelist
func TestListingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		callerID      string
		status        string
		mockSetup     func(m *repository.MockMarketDB)
		expectedError error
	}{
		{
			name:     "owner_marks_sold",
			callerID: "seller1",
			status:   model.ListingSold,
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().GetListingByID("listing1").Return(model.Listing{ListingID: "listing1", SellerID: "seller1"}, nil)
				m.EXPECT().UpdateListingStatus("listing1", model.ListingSold).Return(nil)
			},
		},
		{
			name:          "unknown_status",
			callerID:      "seller1",
			status:        "paused",
			mockSetup:     func(m *repository.MockMarketDB) {},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:     "non_owner_rejected",
			callerID: "intruder",
			status:   model.ListingArchived,
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().GetListingByID("listing1").Return(model.Listing{ListingID: "listing1", SellerID: "seller1"}, nil)
			},
			expectedError: marketerrors.ErrNotOwner,
		},
		{
			name:     "listing_not_found",
			callerID: "seller1",
			status:   model.ListingActive,
			mockSetup: func(m *repository.MockMarketDB) {
				m.EXPECT().GetListingByID("listing1").Return(model.Listing{}, marketerrors.ErrListingNotFound)
			},
			expectedError: marketerrors.ErrListingNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockMarketDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewListingService(mockRepo)

			err := service.UpdateStatus("listing1", tc.callerID, tc.status)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Tests AddImage
func TestListingService_AddImage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	mockRepo.EXPECT().GetListingByID("listing1").Return(model.Listing{ListingID: "listing1", SellerID: "seller1"}, nil)
	mockRepo.EXPECT().AppendListingImage("listing1", "https://img/new.jpg").Return(nil)

	service := NewListingService(mockRepo)

	require.NoError(t, service.AddImage("listing1", "seller1", "https://img/new.jpg"))

	err := service.AddImage("listing1", "seller1", "")
	require.ErrorIs(t, err, marketerrors.ErrValidation)
}

// Tests DeleteListing ownership gate
func TestListingService_DeleteListing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	mockRepo.EXPECT().GetListingByID("listing1").Return(model.Listing{ListingID: "listing1", SellerID: "seller1"}, nil).Times(2)
	mockRepo.EXPECT().DeleteListing("listing1").Return(nil)

	service := NewListingService(mockRepo)

	require.NoError(t, service.DeleteListing("listing1", "seller1"))

	err := service.DeleteListing("listing1", "intruder")
	require.ErrorIs(t, err, marketerrors.ErrNotOwner)
}

// Tests the read queries
func TestListingService_Queries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	mockRepo.EXPECT().GetListingByID("listing1").Return(model.Listing{ListingID: "listing1"}, nil)
	mockRepo.EXPECT().GetListingsBySeller("seller1").Return([]model.Listing{{ListingID: "listing1"}}, nil)

	service := NewListingService(mockRepo)

	l, err := service.GetListing("listing1")
	require.NoError(t, err)
	require.Equal(t, "listing1", l.ListingID)

	listings, err := service.GetListingsBySeller("seller1")
	require.NoError(t, err)
	require.Len(t, listings, 1)

	_, err = service.GetListing("")
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	_, err = service.GetListingsBySeller("")
	require.ErrorIs(t, err, marketerrors.ErrValidation)
}
