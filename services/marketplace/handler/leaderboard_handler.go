package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	model "memehustle/internal/models"
	"memehustle/services/marketplace/helpers"
	"memehustle/utils"
)

type LeaderboardInterface interface {
	Top(limit int) ([]model.Meme, error)
	Trending(limit int) ([]model.Meme, error)
}

type LeaderboardHandler struct {
	rankings LeaderboardInterface
}

func NewLeaderboardHandler(rankings LeaderboardInterface) *LeaderboardHandler {
	return &LeaderboardHandler{rankings: rankings}
}

// TopMemesHandler handles GET /api/leaderboard/top
func (h *LeaderboardHandler) TopMemesHandler(c *gin.Context) {
	h.serve(c, "TopMemesHandler", h.rankings.Top)
}

// TrendingMemesHandler handles GET /api/leaderboard/trending
func (h *LeaderboardHandler) TrendingMemesHandler(c *gin.Context) {
	h.serve(c, "TrendingMemesHandler", h.rankings.Trending)
}

func (h *LeaderboardHandler) serve(c *gin.Context, handlerName string, ranked func(int) ([]model.Meme, error)) {
	limitParam := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid limit parameter: %q", limitParam), "invalid limit parameter")
		utils.Warn(handlerName+": invalid limit parameter", map[string]any{"limit": limitParam})
		return
	}

	memes, err := ranked(limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": error retrieving leaderboard", map[string]any{"error": err.Error()})
		return
	}

	if memes == nil {
		memes = []model.Meme{}
	}

	utils.JSONResponse(c, http.StatusOK, memes, "leaderboard retrieved successfully")
	helpers.LogSuccess(handlerName, "leaderboard retrieved successfully", map[string]any{
		"limit": limit,
		"count": len(memes),
	})
}
