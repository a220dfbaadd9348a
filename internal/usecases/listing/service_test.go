package listing_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellkit/listing-assistant-api/infrastructure/repository/mocks"
	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/internal/usecases/listing"
)

func TestCreateDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListingRepository(ctrl)
	service := listing.NewService(repo)

	var saved *domain.Listing
	repo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(l *domain.Listing) error {
			saved = l
			return nil
		})

	created, err := service.CreateDraft(context.Background(), listing.CreateDraftInput{
		ItemName:   "  Dyson V8  ",
		Category:   "Appliances",
		ImagePaths: []string{"/uploads/a.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, saved, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Dyson V8", created.ItemName)
	assert.Equal(t, domain.ConditionGood, created.Condition)
	assert.Equal(t, domain.ListingStatusDraft, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateDraft_RequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListingRepository(ctrl)
	service := listing.NewService(repo)

	_, err := service.CreateDraft(context.Background(), listing.CreateDraftInput{ItemName: "   "})
	assert.ErrorIs(t, err, listing.ErrNameRequired)
}

func TestGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListingRepository(ctrl)
	service := listing.NewService(repo)

	repo.EXPECT().GetByID("missing").Return(nil, nil)

	_, err := service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, listing.ErrListingNotFound)
}

func TestUpdate_AppliesPartialEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListingRepository(ctrl)
	service := listing.NewService(repo)

	existing := &domain.Listing{
		ID:        "lst_1",
		ItemName:  "Dyson V8",
		Condition: domain.ConditionGood,
		Status:    domain.ListingStatusDraft,
	}
	repo.EXPECT().GetByID("lst_1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any()).Return(nil)

	newName := "Dyson V8 Absolute"
	updated, err := service.Update(context.Background(), "lst_1", listing.UpdateInput{
		ItemName: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dyson V8 Absolute", updated.ItemName)
	assert.Equal(t, domain.ConditionGood, updated.Condition)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListingRepository(ctrl)
	service := listing.NewService(repo)

	repo.EXPECT().Delete("lst_1").Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), "lst_1"))

	repo.EXPECT().Delete("missing").Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), "missing"), listing.ErrListingNotFound)
}

func TestDelete_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListingRepository(ctrl)
	service := listing.NewService(repo)

	repo.EXPECT().Delete("lst_1").Return(false, errors.New("connection refused"))
	assert.Error(t, service.Delete(context.Background(), "lst_1"))
}

func TestMarkPosted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListingRepository(ctrl)
	service := listing.NewService(repo)

	existing := &domain.Listing{
		ID:     "lst_1",
		Status: domain.ListingStatusDraft,
	}
	repo.EXPECT().GetByID("lst_1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := service.MarkPosted(context.Background(), "lst_1", domain.PostResult{
		Marketplace: "facebook",
		Status:      "posted",
		ListingID:   "fb-123",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ListingStatusPosted, updated.Status)
	assert.Equal(t, []string{"facebook"}, updated.PostedTo)
	require.Len(t, updated.PostResults, 1)
	assert.Equal(t, "fb-123", updated.PostResults[0].ListingID)
}

func TestMarkPosted_RepostOverwritesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListingRepository(ctrl)
	service := listing.NewService(repo)

	existing := &domain.Listing{
		ID:       "lst_1",
		Status:   domain.ListingStatusPosted,
		PostedTo: []string{"facebook"},
		PostResults: []domain.PostResult{
			{Marketplace: "facebook", ListingID: "fb-old"},
		},
	}
	repo.EXPECT().GetByID("lst_1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := service.MarkPosted(context.Background(), "lst_1", domain.PostResult{
		Marketplace: "facebook",
		ListingID:   "fb-new",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"facebook"}, updated.PostedTo)
	require.Len(t, updated.PostResults, 1)
	assert.Equal(t, "fb-new", updated.PostResults[0].ListingID)
}
