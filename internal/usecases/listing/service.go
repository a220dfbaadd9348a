package listing

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/infrastructure/repository"
	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/pkg/utils"
)

// Manager is the listing lifecycle: drafts are created from an analysis plus
// pricing, edited, posted to marketplaces, and eventually sold or archived.
type Manager interface {
	CreateDraft(ctx context.Context, input CreateDraftInput) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, filters domain.ListingFilters) ([]*domain.Listing, error)
	Update(ctx context.Context, id string, input UpdateInput) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
	MarkPosted(ctx context.Context, id string, result domain.PostResult) (*domain.Listing, error)
}

type CreateDraftInput struct {
	ItemName    string                `json:"item_name"`
	Category    string                `json:"category"`
	Brand       string                `json:"brand"`
	Condition   string                `json:"condition"`
	Description string                `json:"description"`
	ImagePaths  []string              `json:"image_paths"`
	Pricing     *domain.PricingResult `json:"pricing"`
	Copy        *domain.ListingCopy   `json:"copy"`
}

// UpdateInput applies partial edits. Nil fields are left untouched.
type UpdateInput struct {
	ItemName    *string               `json:"item_name"`
	Category    *string               `json:"category"`
	Brand       *string               `json:"brand"`
	Condition   *string               `json:"condition"`
	Description *string               `json:"description"`
	Status      *string               `json:"status"`
	Pricing     *domain.PricingResult `json:"pricing"`
	Copy        *domain.ListingCopy   `json:"copy"`
}

type Service struct {
	repo repository.ListingRepository
}

func NewService(repo repository.ListingRepository) Manager {
	return &Service{repo: repo}
}

func (s *Service) CreateDraft(_ context.Context, input CreateDraftInput) (*domain.Listing, error) {
	name := strings.TrimSpace(input.ItemName)
	if name == "" {
		return nil, ErrNameRequired
	}

	condition := input.Condition
	if condition == "" {
		condition = domain.ConditionGood
	}

	now := time.Now().UTC()
	draft := &domain.Listing{
		ID:          utils.GenerateID(),
		ItemName:    name,
		Category:    input.Category,
		Brand:       input.Brand,
		Condition:   condition,
		Description: input.Description,
		ImagePaths:  input.ImagePaths,
		Pricing:     input.Pricing,
		Copy:        input.Copy,
		Status:      domain.ListingStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(draft); err != nil {
		return nil, errors.Wrap(err, "saving draft listing")
	}

	logrus.WithFields(logrus.Fields{
		"listing_id": draft.ID,
		"item_name":  draft.ItemName,
	}).Info("listing: draft created")

	return draft, nil
}

func (s *Service) Get(_ context.Context, id string) (*domain.Listing, error) {
	found, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "fetching listing")
	}
	if found == nil {
		return nil, ErrListingNotFound
	}
	return found, nil
}

func (s *Service) List(_ context.Context, filters domain.ListingFilters) ([]*domain.Listing, error) {
	return s.repo.List(filters)
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*domain.Listing, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(current, input)
	current.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(current); err != nil {
		return nil, errors.Wrap(err, "updating listing")
	}

	return current, nil
}

func (s *Service) Delete(_ context.Context, id string) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return errors.Wrap(err, "deleting listing")
	}
	if !deleted {
		return ErrListingNotFound
	}
	return nil
}

// MarkPosted records the post result and transitions the listing to posted.
// Posting the same marketplace again overwrites its previous result.
func (s *Service) MarkPosted(ctx context.Context, id string, result domain.PostResult) (*domain.Listing, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, existing := range current.PostResults {
		if existing.Marketplace == result.Marketplace {
			current.PostResults[i] = result
			replaced = true
			break
		}
	}
	if !replaced {
		current.PostResults = append(current.PostResults, result)
		current.PostedTo = append(current.PostedTo, result.Marketplace)
	}

	current.Status = domain.ListingStatusPosted
	current.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(current); err != nil {
		return nil, errors.Wrap(err, "recording post result")
	}

	return current, nil
}

func applyUpdate(current *domain.Listing, input UpdateInput) {
	if input.ItemName != nil {
		current.ItemName = *input.ItemName
	}
	if input.Category != nil {
		current.Category = *input.Category
	}
	if input.Brand != nil {
		current.Brand = *input.Brand
	}
	if input.Condition != nil {
		current.Condition = *input.Condition
	}
	if input.Description != nil {
		current.Description = *input.Description
	}
	if input.Status != nil {
		current.Status = *input.Status
	}
	if input.Pricing != nil {
		current.Pricing = input.Pricing
	}
	if input.Copy != nil {
		current.Copy = input.Copy
	}
}
