package handler

import (
	"context"
	"io"
	"net/http"

	auth "nearmarket/internal/authService"
	"nearmarket/internal/location"
	model "nearmarket/internal/models"
	"nearmarket/internal/storage"
	"nearmarket/services/market/helpers"
	"nearmarket/utils"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes bounds raw image upload bodies.
const maxUploadBytes = 10 << 20

type AuthServiceInterface interface {
	SignUp(email, password, fullName string) (model.User, string, error)
	SignIn(email, password string) (model.User, string, error)
	CurrentUser(userID string) (model.User, error)
	UpdateProfile(userID string, update auth.ProfileUpdate) (model.User, error)
	SaveLocation(userID string, fix location.Fix) (model.User, error)
}

type LocationResolverInterface interface {
	Resolve(ctx context.Context, lat, lon float64) location.Fix
}

type UploaderInterface interface {
	UploadImage(ctx context.Context, bucket, key string, data []byte) (storage.UploadResult, error)
}

type AuthHandler struct {
	service      AuthServiceInterface
	resolver     LocationResolverInterface
	uploads      UploaderInterface
	avatarBucket string
}

func NewAuthHandler(service AuthServiceInterface, resolver LocationResolverInterface, uploads UploaderInterface, avatarBucket string) *AuthHandler {
	return &AuthHandler{service: service, resolver: resolver, uploads: uploads, avatarBucket: avatarBucket}
}

// SignUpHandler handles POST /auth/signup
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var req helpers.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignUpHandler", err)
		return
	}

	user, token, err := h.service.SignUp(req.Email, req.Password, req.FullName)
	if err != nil {
		helpers.HandleServiceError(c, "SignUpHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuthResponse{Token: token, User: user}, "account created successfully")
	helpers.LogSuccess("SignUpHandler", "account created successfully", map[string]any{"user_id": user.UserID})
}

// SignInHandler handles POST /auth/login
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var req helpers.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignInHandler", err)
		return
	}

	user, token, err := h.service.SignIn(req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "SignInHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuthResponse{Token: token, User: user}, "signed in successfully")
	helpers.LogSuccess("SignInHandler", "signed in successfully", map[string]any{"user_id": user.UserID})
}

// MeHandler handles GET /me
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	user, err := h.service.CurrentUser(userID)
	if err != nil {
		helpers.HandleServiceError(c, "MeHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile retrieved successfully")
}

// UpdateProfileHandler handles PATCH /me
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	var req helpers.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	user, err := h.service.UpdateProfile(userID, auth.ProfileUpdate{
		FullName:    req.FullName,
		Bio:         req.Bio,
		IsBuyer:     req.IsBuyer,
		IsSeller:    req.IsSeller,
		IsOnboarded: req.IsOnboarded,
	})
	if err != nil {
		helpers.HandleServiceError(c, "UpdateProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{"user_id": userID})
}

// SaveLocationHandler handles POST /me/location. Coordinates are resolved
// to place labels (degrading gracefully when geocoding fails) and saved on
// the profile.
func (h *AuthHandler) SaveLocationHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	var req helpers.SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SaveLocationHandler", err)
		return
	}

	fix := h.resolver.Resolve(c.Request.Context(), *req.Latitude, *req.Longitude)

	user, err := h.service.SaveLocation(userID, fix)
	if err != nil {
		helpers.HandleServiceError(c, "SaveLocationHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "location saved successfully")
	helpers.LogSuccess("SaveLocationHandler", "location saved successfully", map[string]any{
		"user_id":     userID,
		"label":       fix.Label,
		"approximate": fix.Approximate,
	})
}

// UploadAvatarHandler handles POST /me/avatar. A failed upload degrades to
// the default avatar URL; the response reports which happened.
func (h *AuthHandler) UploadAvatarHandler(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
	if err != nil || len(data) == 0 {
		helpers.HandleBindError(c, "UploadAvatarHandler", errEmptyUpload(err))
		return
	}

	result, err := h.uploads.UploadImage(c.Request.Context(), h.avatarBucket, userID+"/"+utils.GenerateID(), data)
	if err != nil {
		helpers.HandleServiceError(c, "UploadAvatarHandler", err, map[string]any{"user_id": userID})
		return
	}

	avatarURL := result.URL
	if _, err := h.service.UpdateProfile(userID, auth.ProfileUpdate{AvatarURL: &avatarURL}); err != nil {
		helpers.HandleServiceError(c, "UploadAvatarHandler", err, map[string]any{"user_id": userID})
		return
	}

	resp := helpers.UploadResponse{URL: result.URL, Fallback: result.Outcome == storage.OutcomeFallback}
	utils.JSONResponse(c, http.StatusOK, resp, "avatar uploaded successfully")
	helpers.LogSuccess("UploadAvatarHandler", "avatar uploaded successfully", map[string]any{
		"user_id":  userID,
		"fallback": resp.Fallback,
	})
}
