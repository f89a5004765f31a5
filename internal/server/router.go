package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memehustle/internal/broadcast"
	handler "memehustle/services/marketplace/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(memeHandler *handler.MemeHandler, bidHandler *handler.BidHandler, leaderboardHandler *handler.LeaderboardHandler, hub *broadcast.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MemeHustle API is running!")
	})

	api := router.Group("/api")

	memes := api.Group("/memes")
	{
		memes.POST("", memeHandler.CreateMemeHandler)
		memes.GET("", memeHandler.ListMemesHandler)
		memes.GET("/:meme_id", memeHandler.GetMemeHandler)
		memes.POST("/:meme_id/vote", memeHandler.VoteHandler)
		memes.POST("/:meme_id/caption", memeHandler.RegenerateCaptionHandler)
	}

	bids := api.Group("/bids")
	{
		bids.POST("", bidHandler.RecordBidHandler)
		bids.GET("/meme/:meme_id", bidHandler.GetBidsByMemeHandler)
		bids.GET("/meme/:meme_id/highest", bidHandler.GetHighestBidHandler)
	}

	leaderboard := api.Group("/leaderboard")
	{
		leaderboard.GET("/top", leaderboardHandler.TopMemesHandler)
		leaderboard.GET("/trending", leaderboardHandler.TrendingMemesHandler)
	}

	// Live event stream for connected viewers.
	router.GET("/ws", hub.ServeWS)

	return router
}
