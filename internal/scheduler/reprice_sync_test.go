package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/sellkit/listing-assistant-api/infrastructure/repository/mocks"
	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/domain"
	pricingmocks "github.com/sellkit/listing-assistant-api/internal/usecases/pricing/mocks"
)

func testSyncConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RepriceSync.CronSchedule = "0 3 * * *"
	cfg.RepriceSync.RequestDelaySeconds = 0
	cfg.RepriceSync.Enabled = true
	return cfg
}

func TestSyncAllPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	listingRepo := repomocks.NewMockListingRepository(ctrl)
	pricer := pricingmocks.NewMockPricer(ctrl)

	service := NewRepriceSyncService(listingRepo, pricer, testSyncConfig())

	posted := []*domain.Listing{
		{ID: "lst_1", ItemName: "Dyson V8", Condition: domain.ConditionGood, Status: domain.ListingStatusPosted},
		{ID: "lst_2", ItemName: "Old Lamp", Condition: domain.ConditionFair, Status: domain.ListingStatusPosted},
	}

	listingRepo.EXPECT().
		List(domain.ListingFilters{Status: domain.ListingStatusPosted}).
		Return(posted, nil)

	newPricing := &domain.PricingResult{
		Source:         domain.PricingSourceSoldListings,
		Recommendation: &domain.PriceRecommendation{MedianPrice: 99},
	}
	pricer.EXPECT().EstimateForItem(gomock.Any(), "Dyson V8", domain.ConditionGood).Return(newPricing, nil)
	pricer.EXPECT().EstimateForItem(gomock.Any(), "Old Lamp", domain.ConditionFair).Return(newPricing, nil)

	listingRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(2)

	service.syncAllPrices(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 2, status.LastRepriced)
	assert.Equal(t, 0, status.LastFailed)
	require.NotNil(t, status.LastStartedAt)
	require.NotNil(t, status.LastCompletedAt)

	assert.Equal(t, newPricing, posted[0].Pricing)
}

func TestSyncAllPrices_CountsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	listingRepo := repomocks.NewMockListingRepository(ctrl)
	pricer := pricingmocks.NewMockPricer(ctrl)

	service := NewRepriceSyncService(listingRepo, pricer, testSyncConfig())

	posted := []*domain.Listing{
		{ID: "lst_1", ItemName: "Dyson V8", Condition: domain.ConditionGood},
		{ID: "lst_2", ItemName: "Old Lamp", Condition: domain.ConditionFair},
	}
	listingRepo.EXPECT().List(gomock.Any()).Return(posted, nil)

	pricer.EXPECT().
		EstimateForItem(gomock.Any(), "Dyson V8", domain.ConditionGood).
		Return(nil, errors.New("finding api returned 500"))
	pricer.EXPECT().
		EstimateForItem(gomock.Any(), "Old Lamp", domain.ConditionFair).
		Return(&domain.PricingResult{}, nil)

	listingRepo.EXPECT().Update(gomock.Any()).Return(nil)

	service.syncAllPrices(context.Background())

	status := service.Status()
	assert.Equal(t, 1, status.LastRepriced)
	assert.Equal(t, 1, status.LastFailed)
}

func TestSyncAllPrices_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	listingRepo := repomocks.NewMockListingRepository(ctrl)
	pricer := pricingmocks.NewMockPricer(ctrl)

	service := NewRepriceSyncService(listingRepo, pricer, testSyncConfig())

	listingRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	service.syncAllPrices(context.Background())

	status := service.Status()
	assert.Equal(t, 0, status.LastRepriced)
	assert.Equal(t, 0, status.LastFailed)
	assert.False(t, status.Running)
}

func TestRunNow_RefusesConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	listingRepo := repomocks.NewMockListingRepository(ctrl)
	pricer := pricingmocks.NewMockPricer(ctrl)

	service := NewRepriceSyncService(listingRepo, pricer, testSyncConfig())

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	assert.False(t, service.RunNow())
	assert.True(t, service.Status().Running)
}

func TestRunNow_OutlivesTriggeringRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	listingRepo := repomocks.NewMockListingRepository(ctrl)
	pricer := pricingmocks.NewMockPricer(ctrl)

	service := NewRepriceSyncService(listingRepo, pricer, testSyncConfig())

	posted := []*domain.Listing{
		{ID: "lst_1", ItemName: "Dyson V8", Condition: domain.ConditionGood, Status: domain.ListingStatusPosted},
	}
	listingRepo.EXPECT().List(gomock.Any()).Return(posted, nil)
	pricer.EXPECT().
		EstimateForItem(gomock.Any(), "Dyson V8", domain.ConditionGood).
		DoAndReturn(func(ctx context.Context, query, condition string) (*domain.PricingResult, error) {
			// The run must not ride on a request-scoped context: the trigger
			// endpoint has long since responded by the time this executes.
			require.NoError(t, ctx.Err())
			return &domain.PricingResult{Source: domain.PricingSourceSoldListings}, nil
		})
	listingRepo.EXPECT().Update(gomock.Any()).Return(nil)

	require.True(t, service.RunNow())

	require.Eventually(t, func() bool {
		status := service.Status()
		return !status.Running && status.LastCompletedAt != nil
	}, 2*time.Second, 10*time.Millisecond)

	status := service.Status()
	assert.Equal(t, 1, status.LastRepriced)
	assert.Equal(t, 0, status.LastFailed)
}
