package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"memehustle/internal/hustleerrors"
	meme "memehustle/internal/memeService"
	model "memehustle/internal/models"
	"memehustle/services/marketplace/helpers"
	"memehustle/utils"
)

type MemeServiceInterface interface {
	CreateMeme(ctx context.Context, in meme.CreateMemeInput) (model.Meme, error)
	ListMemes() ([]model.Meme, error)
	GetMeme(memeID string) (model.Meme, error)
	RegenerateCaption(ctx context.Context, memeID string) (model.Meme, bool, error)
}

type VoteServiceInterface interface {
	ApplyVote(memeID, direction string) (model.Meme, error)
}

type MemeHandler struct {
	memes MemeServiceInterface
	votes VoteServiceInterface
	bids  BidServiceInterface
}

func NewMemeHandler(memes MemeServiceInterface, votes VoteServiceInterface, bids BidServiceInterface) *MemeHandler {
	return &MemeHandler{memes: memes, votes: votes, bids: bids}
}

// CreateMemeHandler handles POST /api/memes
func (h *MemeHandler) CreateMemeHandler(c *gin.Context) {
	var req helpers.CreateMemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateMemeHandler", err)
		return
	}

	created, err := h.memes.CreateMeme(c.Request.Context(), meme.CreateMemeInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
		OwnerID:  req.OwnerID,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateMemeHandler: failed to create meme", map[string]any{
			"title": req.Title,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "meme created successfully")
	helpers.LogSuccess("CreateMemeHandler", "meme created successfully", map[string]any{
		"meme_id":  created.ID,
		"owner_id": created.OwnerID,
	})
}

// ListMemesHandler handles GET /api/memes
func (h *MemeHandler) ListMemesHandler(c *gin.Context) {
	memes, err := h.memes.ListMemes()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListMemesHandler: error listing memes", map[string]any{"error": err.Error()})
		return
	}

	if memes == nil {
		memes = []model.Meme{}
	}

	utils.JSONResponse(c, http.StatusOK, memes, "memes retrieved successfully")
	helpers.LogSuccess("ListMemesHandler", "memes retrieved successfully", map[string]any{
		"count": len(memes),
	})
}

// GetMemeHandler handles GET /api/memes/:meme_id
func (h *MemeHandler) GetMemeHandler(c *gin.Context) {
	memeID := c.Param("meme_id")

	found, err := h.memes.GetMeme(memeID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMemeHandler: error retrieving meme", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	resp := helpers.MemeDetailResponse{Meme: found}
	highest, err := h.bids.GetHighestBid(memeID)
	switch {
	case err == nil:
		resp.HighestBid = &highest
	case errors.Is(err, hustleerrors.ErrNoBids):
		// No bids yet, highest_bid stays null.
	default:
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMemeHandler: error retrieving highest bid", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resp, "meme retrieved successfully")
	helpers.LogSuccess("GetMemeHandler", "meme retrieved successfully", map[string]any{
		"meme_id": memeID,
	})
}

// VoteHandler handles POST /api/memes/:meme_id/vote
func (h *MemeHandler) VoteHandler(c *gin.Context) {
	memeID := c.Param("meme_id")

	var req helpers.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VoteHandler", err)
		return
	}

	updated, err := h.votes.ApplyVote(memeID, req.Type)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("VoteHandler: failed to apply vote", map[string]any{
			"meme_id": memeID,
			"type":    req.Type,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "vote recorded successfully")
	helpers.LogSuccess("VoteHandler", "vote recorded successfully", map[string]any{
		"meme_id": memeID,
		"type":    req.Type,
		"upvotes": updated.Upvotes,
	})
}

// RegenerateCaptionHandler handles POST /api/memes/:meme_id/caption
func (h *MemeHandler) RegenerateCaptionHandler(c *gin.Context) {
	memeID := c.Param("meme_id")

	updated, captionError, err := h.memes.RegenerateCaption(c.Request.Context(), memeID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegenerateCaptionHandler: failed to regenerate caption", map[string]any{
			"meme_id": memeID,
			"error":   err.Error(),
		})
		return
	}

	// A generation failure is a soft error, the meme is returned unchanged
	// with the captionError marker set.
	resp := helpers.CaptionResponse{Meme: updated, CaptionError: captionError}
	utils.JSONResponse(c, http.StatusOK, resp, "caption regenerated")
	helpers.LogSuccess("RegenerateCaptionHandler", "caption regenerated", map[string]any{
		"meme_id":       memeID,
		"caption_error": captionError,
	})
}
