package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/ai"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/content"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/repository"
	apperrors "github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/errors"
)

// GeneratorService runs the main generation flow: spend a credit, build a
// prompt around the owner's brand profile, call the completion API, persist
// the result. The credit is returned if the completion or the insert fails.
type GeneratorService struct {
	contentRepo repository.ContentRepository
	creditRepo  repository.CreditRepository
	completer   ai.Completer
	freeCredits int
}

func NewGeneratorService(contentRepo repository.ContentRepository, creditRepo repository.CreditRepository, completer ai.Completer, freeCredits int) *GeneratorService {
	return &GeneratorService{
		contentRepo: contentRepo,
		creditRepo:  creditRepo,
		completer:   completer,
		freeCredits: freeCredits,
	}
}

type GenerateInput struct {
	Topic    string
	Platform string
	Tone     string
	Draft    string
}

func (s *GeneratorService) Generate(ctx context.Context, ownerID uuid.UUID, in GenerateInput) (content.GeneratedContent, error) {
	if strings.TrimSpace(in.Topic) == "" || strings.TrimSpace(in.Platform) == "" {
		return content.GeneratedContent{}, apperrors.ErrInvalidInput
	}

	if _, err := s.creditRepo.GetOrSeed(ctx, ownerID, s.freeCredits); err != nil {
		return content.GeneratedContent{}, err
	}
	spent, err := s.creditRepo.Decrement(ctx, ownerID)
	if err != nil {
		return content.GeneratedContent{}, err
	}
	if !spent {
		return content.GeneratedContent{}, apperrors.ErrNoCredits
	}

	profile, err := s.contentRepo.GetBrandProfile(ctx, ownerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		_ = s.creditRepo.Refund(ctx, ownerID)
		return content.GeneratedContent{}, err
	}

	body, err := s.completer.Complete(ctx, buildPrompt(in, profile))
	if err != nil {
		_ = s.creditRepo.Refund(ctx, ownerID)
		return content.GeneratedContent{}, err
	}

	rec := content.GeneratedContent{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Platform:  strings.TrimSpace(in.Platform),
		Topic:     strings.TrimSpace(in.Topic),
		Tone:      strings.TrimSpace(in.Tone),
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contentRepo.CreateContent(ctx, &rec); err != nil {
		_ = s.creditRepo.Refund(ctx, ownerID)
		return content.GeneratedContent{}, err
	}
	return rec, nil
}

func (s *GeneratorService) History(ctx context.Context, ownerID uuid.UUID) ([]content.GeneratedContent, error) {
	return s.contentRepo.ListContentByOwner(ctx, ownerID)
}

func (s *GeneratorService) Credits(ctx context.Context, ownerID uuid.UUID) (int, error) {
	acct, err := s.creditRepo.GetOrSeed(ctx, ownerID, s.freeCredits)
	if err != nil {
		return 0, err
	}
	return acct.Remaining, nil
}

type BrandProfileInput struct {
	Voice     string
	Audience  string
	Hashtags  string
	Signature string
}

func (s *GeneratorService) GetBrandProfile(ctx context.Context, ownerID uuid.UUID) (content.BrandProfile, error) {
	return s.contentRepo.GetBrandProfile(ctx, ownerID)
}

func (s *GeneratorService) SaveBrandProfile(ctx context.Context, ownerID uuid.UUID, in BrandProfileInput) (content.BrandProfile, error) {
	p := content.BrandProfile{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Voice:     strings.TrimSpace(in.Voice),
		Audience:  strings.TrimSpace(in.Audience),
		Hashtags:  strings.TrimSpace(in.Hashtags),
		Signature: strings.TrimSpace(in.Signature),
	}
	if err := s.contentRepo.UpsertBrandProfile(ctx, &p); err != nil {
		return content.BrandProfile{}, err
	}
	return s.contentRepo.GetBrandProfile(ctx, ownerID)
}
