package fbclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// MarketplaceListing is the Graph API payload for a marketplace listing.
// Price is in cents.
type MarketplaceListing struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        int64    `json:"price"`
	Currency     string   `json:"currency"`
	Condition    string   `json:"condition"`
	Availability string   `json:"availability"`
	Photos       []string `json:"photos,omitempty"`
}

type CreateListingResponse struct {
	ID string `json:"id"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// UploadPhoto uploads a local image to the page's photo store without
// publishing it, returning the photo ID for the listing payload.
func (c *FacebookClient) UploadPhoto(ctx context.Context, imagePath string) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("opening photo: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("source", filepath.Base(imagePath))
	if err != nil {
		return "", fmt.Errorf("building multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copying photo content: %w", err)
	}
	if err := writer.WriteField("published", "false"); err != nil {
		return "", fmt.Errorf("writing form field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("closing multipart form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/photos?access_token=%s",
		c.cfg.Facebook.URL, c.cfg.Facebook.PageID, url.QueryEscape(c.cfg.Facebook.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("building photo upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading photo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading photo upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", graphAPIError(resp.StatusCode, body)
	}

	var uploaded struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return "", fmt.Errorf("decoding photo upload response: %w", err)
	}

	return uploaded.ID, nil
}

// CreateMarketplaceListing posts the listing to the page's marketplace.
func (c *FacebookClient) CreateMarketplaceListing(ctx context.Context, listing MarketplaceListing) (*CreateListingResponse, error) {
	payload, err := json.Marshal(listing)
	if err != nil {
		return nil, fmt.Errorf("marshaling listing payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/marketplace_listings?access_token=%s",
		c.cfg.Facebook.URL, c.cfg.Facebook.PageID, url.QueryEscape(c.cfg.Facebook.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building listing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting listing: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading listing response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"name":   listing.Name,
		}).Error("facebook: marketplace listing creation failed")
		return nil, graphAPIError(resp.StatusCode, body)
	}

	var created CreateListingResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decoding listing response: %w", err)
	}

	return &created, nil
}

func graphAPIError(status int, body []byte) error {
	var gErr graphError
	if err := json.Unmarshal(body, &gErr); err == nil && gErr.Error.Message != "" {
		return fmt.Errorf("graph api error %d (%s): %s", gErr.Error.Code, gErr.Error.Type, gErr.Error.Message)
	}
	return fmt.Errorf("graph api returned status %d", status)
}
