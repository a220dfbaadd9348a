package fbclient

import (
	"context"
	"net/http"
	"time"

	"github.com/sellkit/listing-assistant-api/internal/config"
)

type Client interface {
	UploadPhoto(ctx context.Context, imagePath string) (string, error)
	CreateMarketplaceListing(ctx context.Context, listing MarketplaceListing) (*CreateListingResponse, error)
}

type FacebookClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &FacebookClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cfg: cfg,
	}
}
