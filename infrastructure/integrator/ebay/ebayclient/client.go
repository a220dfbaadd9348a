package ebayclient

import (
	"context"
	"net/http"
	"time"

	"github.com/sellkit/listing-assistant-api/internal/config"
)

type Client interface {
	FindCompletedItems(ctx context.Context, params FindCompletedItemsParams) (*FindCompletedItemsResponse, error)
}

type EbayClient struct {
	httpClient   *http.Client
	cfg          *config.Config
	tokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &EbayClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:          cfg,
		tokenManager: tokenManager,
	}
}
