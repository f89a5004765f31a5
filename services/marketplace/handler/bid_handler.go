package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"memehustle/internal/hustleerrors"
	model "memehustle/internal/models"
	"memehustle/services/marketplace/helpers"
	"memehustle/utils"
)

type BidServiceInterface interface {
	PlaceBid(memeID, userID string, credits int) (model.Bid, error)
	GetBidsForMeme(memeID string) ([]model.Bid, error)
	GetHighestBid(memeID string) (model.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// RecordBidHandler handles POST /api/bids
func (h *BidHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.MemeID, req.UserID, req.Credits)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"meme_id": req.MemeID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.ID,
		"meme_id": bid.MemeID,
		"user_id": bid.UserID,
		"credits": bid.Credits,
	})
}

// GetBidsByMemeHandler handles GET /api/bids/meme/:meme_id
func (h *BidHandler) GetBidsByMemeHandler(c *gin.Context) {
	memeID := c.Param("meme_id")
	bids, err := h.service.GetBidsForMeme(memeID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByMemeHandler: error retrieving bids", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByMemeHandler", "bids retrieved successfully", map[string]any{
		"meme_id": memeID,
		"count":   len(bids),
	})
}

// GetHighestBidHandler handles GET /api/bids/meme/:meme_id/highest
func (h *BidHandler) GetHighestBidHandler(c *gin.Context) {
	memeID := c.Param("meme_id")
	bid, err := h.service.GetHighestBid(memeID)
	if err != nil {
		if errors.Is(err, hustleerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no bids found for meme")
			utils.Info("GetHighestBidHandler: no bids found", map[string]any{"meme_id": memeID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHighestBidHandler: highest bid error", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "highest bid retrieved successfully")
	helpers.LogSuccess("GetHighestBidHandler", "highest bid retrieved successfully", map[string]any{
		"bid_id":  bid.ID,
		"meme_id": bid.MemeID,
		"user_id": bid.UserID,
		"credits": bid.Credits,
	})
}
