package httpdto

import (
	"time"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/content"
)

type GenerateRequest struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Tone     string `json:"tone"`
	Draft    string `json:"draft"`
}

type ContentResponse struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Topic     string    `json:"topic"`
	Tone      string    `json:"tone,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Items []ContentResponse `json:"items"`
}

type CreditsResponse struct {
	Remaining int `json:"remaining"`
}

type BrandProfileRequest struct {
	Voice     string `json:"voice"`
	Audience  string `json:"audience"`
	Hashtags  string `json:"hashtags"`
	Signature string `json:"signature"`
}

type BrandProfileResponse struct {
	Voice     string `json:"voice"`
	Audience  string `json:"audience"`
	Hashtags  string `json:"hashtags"`
	Signature string `json:"signature"`
}

func FromContent(c content.GeneratedContent) ContentResponse {
	return ContentResponse{
		ID:        c.ID.String(),
		Platform:  c.Platform,
		Topic:     c.Topic,
		Tone:      c.Tone,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

func FromContentSlice(items []content.GeneratedContent) []ContentResponse {
	out := make([]ContentResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromContent(c))
	}
	return out
}

func FromBrandProfile(p content.BrandProfile) BrandProfileResponse {
	return BrandProfileResponse{
		Voice:     p.Voice,
		Audience:  p.Audience,
		Hashtags:  p.Hashtags,
		Signature: p.Signature,
	}
}
