package handler

//go:generate mockgen -destination=mock_services.go -package=handler nearmarket/services/market/handler AuthServiceInterface,ListingServiceInterface,OfferServiceInterface,ChatServiceInterface,ArchiveServiceInterface,LocationResolverInterface,UploaderInterface

import "errors"

// ContextUserID is the gin context key under which the auth middleware
// stores the authenticated user's id.
const ContextUserID = "user_id"

// errBadCoordinates is the bind error for unparseable lat/lon query params.
var errBadCoordinates = errors.New("lat and lon query parameters are required")

func errEmptyUpload(err error) error {
	if err != nil {
		return err
	}
	return errors.New("empty upload body")
}
