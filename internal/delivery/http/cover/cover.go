package http_cover

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/humanbelnik/movieshelf/core/internal/delivery/http/common"
	"github.com/humanbelnik/movieshelf/core/internal/model"
	usecase_cover "github.com/humanbelnik/movieshelf/core/internal/usecase/cover"
)

// UploadCoverRequestDTO is the body of POST /upload-cover.
type UploadCoverRequestDTO struct {
	Base64   string `json:"base64" binding:"required"`
	MimeType string `json:"mimeType" binding:"required"`
	FileName string `json:"fileName" binding:"required"`
}

type UploadCoverResponseDTO struct {
	URL string `json:"url"`
}

type Controller struct {
	uc *usecase_cover.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_cover.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload-cover", c.uploadCover)
}

// @Summary Upload cover image
// @Description Stores a base64-encoded cover and returns its public URL
// @Tags Covers operations
// @Accept json
// @Produce json
// @Param request body UploadCoverRequestDTO true "Cover payload"
// @Success 200 {object} UploadCoverResponseDTO "Stored cover URL"
// @Failure 400 {object} http_common.ErrorResponse "Missing fields"
// @Failure 500 {object} http_common.ErrorResponse "Upload failure"
// @Router /upload-cover [post]
func (c *Controller) uploadCover(ctx *gin.Context) {
	var req UploadCoverRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "base64, mimeType, fileName required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	url, err := c.uc.Store(ctx.Request.Context(), model.CoverFile{
		Base64:   req.Base64,
		MimeType: req.MimeType,
		FileName: req.FileName,
	})
	if err != nil {
		if errors.Is(err, usecase_cover.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "base64, mimeType, fileName required",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}
		c.logger.Error("failed to upload cover",
			slog.String("error", err.Error()),
			slog.String("file_name", req.FileName),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to upload cover",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, UploadCoverResponseDTO{URL: url})
}
