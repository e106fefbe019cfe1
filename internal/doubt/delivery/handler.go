package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaryssaGabi/RotinaOdonto/internal/doubt/repository"
	"github.com/LaryssaGabi/RotinaOdonto/internal/doubt/usecase"
)

// DoubtHandler handles knowledge-base HTTP requests
type DoubtHandler struct {
	doubtUsecase usecase.DoubtUsecase
}

func NewDoubtHandler(doubtUsecase usecase.DoubtUsecase) *DoubtHandler {
	return &DoubtHandler{doubtUsecase: doubtUsecase}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Doubt not found"})
	case errors.Is(err, usecase.ErrEmptyName), errors.Is(err, usecase.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetDoubts returns every note, newest first.
// GET /api/doubts
func (h *DoubtHandler) GetDoubts(c *gin.Context) {
	doubts, err := h.doubtUsecase.ListDoubts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doubts": doubts, "total": len(doubts)})
}

// GetDoubtByID returns a single note.
// GET /api/doubts/:id
func (h *DoubtHandler) GetDoubtByID(c *gin.Context) {
	doubt, err := h.doubtUsecase.GetDoubtByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doubt)
}

// CreateDoubt stores a new note.
// POST /api/doubts
func (h *DoubtHandler) CreateDoubt(c *gin.Context) {
	var req usecase.DoubtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doubt, err := h.doubtUsecase.CreateDoubt(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doubt)
}

// UpdateDoubt edits an existing note.
// PUT /api/doubts/:id
func (h *DoubtHandler) UpdateDoubt(c *gin.Context) {
	var req usecase.DoubtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doubt, err := h.doubtUsecase.UpdateDoubt(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doubt)
}

// DeleteDoubt removes a note permanently.
// DELETE /api/doubts/:id
func (h *DoubtHandler) DeleteDoubt(c *gin.Context) {
	if err := h.doubtUsecase.DeleteDoubt(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doubt deleted successfully"})
}
