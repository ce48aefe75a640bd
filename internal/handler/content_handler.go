package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/services"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/transport/httpdto"
)

type ContentHandler struct {
	service *services.GeneratorService
}

func NewContentHandler(service *services.GeneratorService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) Generate(c *gin.Context) {
	owner, ok := services.OwnerFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	rec, err := h.service.Generate(c.Request.Context(), owner.ID, services.GenerateInput{
		Topic:    req.Topic,
		Platform: req.Platform,
		Tone:     req.Tone,
		Draft:    req.Draft,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromContent(rec)))
}

func (h *ContentHandler) History(c *gin.Context) {
	owner, ok := services.OwnerFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	items, err := h.service.History(c.Request.Context(), owner.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.HistoryResponse{
		Items: httpdto.FromContentSlice(items),
	}))
}

func (h *ContentHandler) Credits(c *gin.Context) {
	owner, ok := services.OwnerFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	remaining, err := h.service.Credits(c.Request.Context(), owner.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.CreditsResponse{Remaining: remaining}))
}

func (h *ContentHandler) GetBrandProfile(c *gin.Context) {
	owner, ok := services.OwnerFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	profile, err := h.service.GetBrandProfile(c.Request.Context(), owner.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromBrandProfile(profile)))
}

func (h *ContentHandler) SaveBrandProfile(c *gin.Context) {
	owner, ok := services.OwnerFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.BrandProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	profile, err := h.service.SaveBrandProfile(c.Request.Context(), owner.ID, services.BrandProfileInput{
		Voice:     req.Voice,
		Audience:  req.Audience,
		Hashtags:  req.Hashtags,
		Signature: req.Signature,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromBrandProfile(profile)))
}
