package ebayclient

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/internal/config"
)

// Renew this long before the reported expiry to avoid racing the deadline.
const tokenExpiryMargin = 5 * time.Minute

// TokenManager caches the eBay application OAuth token (client-credentials
// grant) and refreshes it when it is close to expiring.
type TokenManager struct {
	cfg *config.Config

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid application token, requesting a new one if the
// cached token is missing or about to expire.
func (tm *TokenManager) Token() (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.accessToken != "" && time.Now().Before(tm.expiresAt) {
		return tm.accessToken, nil
	}

	if tm.cfg.Ebay.AppID == "" || tm.cfg.Ebay.CertID == "" {
		return "", fmt.Errorf("ebay credentials not configured")
	}

	authString := fmt.Sprintf("%s:%s", tm.cfg.Ebay.AppID, tm.cfg.Ebay.CertID)
	authHeader := "Basic " + base64.StdEncoding.EncodeToString([]byte(authString))

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "https://api.ebay.com/oauth/api_scope")

	req, err := http.NewRequest(http.MethodPost, tm.cfg.Ebay.OAuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", authHeader)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting ebay token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ebay token endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}

	tm.accessToken = token.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin)

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).Debug("ebay: refreshed application token")

	return tm.accessToken, nil
}
