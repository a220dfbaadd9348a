package facebook

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/facebook/fbclient"
	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/domain"
)

type FacebookIntegrator struct {
	cfg    *config.Config
	Client fbclient.Client
}

func New(cfg *config.Config, client fbclient.Client) *FacebookIntegrator {
	return &FacebookIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// PostListing uploads the listing's photos and creates the marketplace
// listing, returning the live listing URL.
func (s *FacebookIntegrator) PostListing(ctx context.Context, listing *domain.Listing, price float64) (*domain.PostResult, error) {
	if listing.Copy == nil {
		return nil, errors.New("listing has no generated copy to post")
	}

	photoIDs := make([]string, 0, len(listing.ImagePaths))
	for _, path := range listing.ImagePaths {
		photoID, err := s.Client.UploadPhoto(ctx, path)
		if err != nil {
			return nil, errors.Wrapf(err, "uploading photo %s", path)
		}
		photoIDs = append(photoIDs, photoID)
	}

	payload := BuildMarketplaceListing(listing, price)
	payload.Photos = photoIDs

	created, err := s.Client.CreateMarketplaceListing(ctx, payload)
	if err != nil {
		return nil, errors.Wrap(err, "creating marketplace listing")
	}

	logrus.WithFields(logrus.Fields{
		"listing_id":  listing.ID,
		"external_id": created.ID,
	}).Info("facebook: listing posted")

	return &domain.PostResult{
		Marketplace: "facebook",
		Status:      "posted",
		ListingID:   created.ID,
		URL:         fmt.Sprintf("https://www.facebook.com/marketplace/item/%s", created.ID),
	}, nil
}

// BuildMarketplaceListing assembles the Graph payload. The Graph API takes
// the price in cents.
func BuildMarketplaceListing(listing *domain.Listing, price float64) fbclient.MarketplaceListing {
	description := ""
	if listing.Copy != nil {
		if listing.Copy.FacebookCopy != "" {
			description = listing.Copy.FacebookCopy
		} else {
			description = listing.Copy.Description
		}
	}

	title := listing.ItemName
	if listing.Copy != nil && listing.Copy.Title != "" {
		title = listing.Copy.Title
	}

	return fbclient.MarketplaceListing{
		Name:         title,
		Description:  description,
		Price:        int64(math.Round(price * 100)),
		Currency:     "USD",
		Condition:    ConditionToFacebook(listing.Condition),
		Availability: "in stock",
	}
}

// ConditionToFacebook maps internal condition tags to the Graph API
// marketplace condition enum.
func ConditionToFacebook(condition string) string {
	switch strings.ToLower(condition) {
	case domain.ConditionNew:
		return "new"
	case domain.ConditionLikeNew:
		return "used_like_new"
	case domain.ConditionGood:
		return "used_good"
	case domain.ConditionFair, domain.ConditionPoor:
		return "used_fair"
	default:
		return "used_good"
	}
}
