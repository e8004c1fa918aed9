package server

import (
	"nearmarket/internal/notify"
	handler "nearmarket/services/market/handler"

	"github.com/gin-gonic/gin"
)

// Deps bundles the services the router wires into handlers.
type Deps struct {
	Auth          handler.AuthServiceInterface
	Listings      handler.ListingServiceInterface
	Offers        handler.OfferServiceInterface
	Chats         handler.ChatServiceInterface
	Archive       handler.ArchiveServiceInterface
	Resolver      handler.LocationResolverInterface
	Uploads       handler.UploaderInterface
	Tokens        TokenVerifier
	Hub           *notify.Hub
	AvatarBucket  string
	ListingBucket string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(d Deps) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	authHandler := handler.NewAuthHandler(d.Auth, d.Resolver, d.Uploads, d.AvatarBucket)
	listingHandler := handler.NewListingHandler(d.Listings, d.Uploads, d.ListingBucket)
	offerHandler := handler.NewOfferHandler(d.Offers)
	chatHandler := handler.NewChatHandler(d.Chats)
	archiveHandler := handler.NewArchiveHandler(d.Archive)
	wsHandler := handler.NewWSHandler(d.Chats, d.Hub)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.SignUpHandler)
		auth.POST("/login", authHandler.SignInHandler)
	}

	authed := router.Group("/")
	authed.Use(AuthMiddleware(d.Tokens))

	me := authed.Group("/me")
	{
		me.GET("", authHandler.MeHandler)
		me.PATCH("", authHandler.UpdateProfileHandler)
		me.POST("/location", authHandler.SaveLocationHandler)
		me.POST("/avatar", authHandler.UploadAvatarHandler)
		me.GET("/listings", listingHandler.MyListingsHandler)
		me.GET("/offers", offerHandler.MyOffersHandler)
	}

	listings := authed.Group("/listings")
	{
		listings.POST("", listingHandler.CreateListingHandler)
		listings.GET("/nearby", listingHandler.NearbyListingsHandler)
		listings.GET("/:listing_id", listingHandler.GetListingHandler)
		listings.PATCH("/:listing_id/status", listingHandler.UpdateListingStatusHandler)
		listings.POST("/:listing_id/images", listingHandler.UploadListingImageHandler)
		listings.DELETE("/:listing_id", listingHandler.DeleteListingHandler)
		listings.GET("/:listing_id/offers", offerHandler.GetOffersByListingHandler)
	}

	offers := authed.Group("/offers")
	{
		offers.POST("", offerHandler.CreateOfferHandler)
		offers.POST("/:offer_id/respond", offerHandler.RespondOfferHandler)
	}

	chats := authed.Group("/chats")
	{
		chats.GET("", chatHandler.ListChatsHandler)
		chats.GET("/:chat_id/messages", chatHandler.FetchMessagesHandler)
		chats.POST("/:chat_id/messages", chatHandler.SendMessageHandler)
	}

	archived := authed.Group("/archive")
	{
		archived.POST("", archiveHandler.SaveArchiveHandler)
		archived.DELETE("/:listing_id", archiveHandler.RemoveArchiveHandler)
		archived.GET("", archiveHandler.ListArchiveHandler)
	}

	ws := authed.Group("/ws")
	{
		ws.GET("/chats/:chat_id", wsHandler.ChatStreamHandler)
		ws.GET("/notifications", wsHandler.NotificationStreamHandler)
	}

	return router
}
