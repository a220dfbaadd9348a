package ebay

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/ebay/ebayclient"
	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/domain"
)

// Sold listings whose selling state is anything else are ended-without-sale
// and carry no real transaction price.
const endedWithSales = "EndedWithSales"

type EbayIntegrator struct {
	cfg    *config.Config
	Client ebayclient.Client
}

func New(cfg *config.Config, client ebayclient.Client) *EbayIntegrator {
	return &EbayIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// SearchSoldListings fetches completed sales for the query and maps them to
// sale observations: total price (item + shipping), sale timestamp from the
// listing end time, and a normalized condition tag.
func (s *EbayIntegrator) SearchSoldListings(ctx context.Context, query, condition string, maxResults int) ([]domain.SaleObservation, error) {
	params := ebayclient.FindCompletedItemsParams{
		Keywords:    query,
		ConditionID: ConditionToEbayID(condition),
		MaxResults:  maxResults,
	}

	resp, err := s.Client.FindCompletedItems(ctx, params)
	if err != nil {
		return nil, err
	}

	observations := MapItemsToObservations(resp.Items())

	logrus.WithFields(logrus.Fields{
		"query":        query,
		"observations": len(observations),
	}).Debug("ebay: mapped sold listings to observations")

	return observations, nil
}

// MapItemsToObservations converts Finding API items into sale observations,
// keeping only listings that ended with an actual sale.
func MapItemsToObservations(items []ebayclient.Item) []domain.SaleObservation {
	observations := make([]domain.SaleObservation, 0, len(items))

	for _, item := range items {
		if len(item.SellingStatus) == 0 {
			continue
		}
		status := item.SellingStatus[0]

		if len(status.SellingState) == 0 || status.SellingState[0] != endedWithSales {
			continue
		}

		price := moneyValue(status.CurrentPrice)
		shipping := 0.0
		if len(item.ShippingInfo) > 0 {
			shipping = moneyValue(item.ShippingInfo[0].ShippingServiceCost)
		}

		obs := domain.SaleObservation{
			Price: price + shipping,
		}

		if len(item.ListingInfo) > 0 && len(item.ListingInfo[0].EndTime) > 0 {
			if soldAt, err := time.Parse(time.RFC3339, item.ListingInfo[0].EndTime[0]); err == nil {
				obs.SoldAt = &soldAt
			}
		}

		if len(item.Condition) > 0 && len(item.Condition[0].ConditionDisplayName) > 0 {
			obs.Condition = NormalizeCondition(item.Condition[0].ConditionDisplayName[0])
		}

		observations = append(observations, obs)
	}

	return observations
}

func moneyValue(money []ebayclient.Money) float64 {
	if len(money) == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(money[0].Value, 64)
	if err != nil {
		return 0
	}
	return value
}

// ConditionToEbayID maps internal condition tags to eBay condition IDs.
func ConditionToEbayID(condition string) string {
	switch strings.ToLower(condition) {
	case domain.ConditionNew:
		return "1000"
	case domain.ConditionLikeNew:
		return "1500"
	case domain.ConditionGood, domain.ConditionFair:
		return "3000"
	case domain.ConditionPoor:
		return "7000"
	default:
		return ""
	}
}

// NormalizeCondition maps eBay condition display names back to internal tags.
func NormalizeCondition(displayName string) string {
	switch strings.ToLower(displayName) {
	case "new", "brand new":
		return domain.ConditionNew
	case "new other (see details)", "open box", "like new":
		return domain.ConditionLikeNew
	case "used", "pre-owned", "good", "very good":
		return domain.ConditionGood
	case "acceptable", "fair":
		return domain.ConditionFair
	case "for parts or not working", "poor":
		return domain.ConditionPoor
	default:
		return ""
	}
}
