package ebayclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	findingOperation      = "findCompletedItems"
	findingServiceVersion = "1.13.0"
	maxEntriesPerPage     = 100
)

type FindCompletedItemsParams struct {
	Keywords    string
	ConditionID string
	MaxResults  int
}

// FindCompletedItemsResponse mirrors the Finding API JSON shape, where every
// field arrives as a single-element array.
type FindCompletedItemsResponse struct {
	FindCompletedItemsResponse []struct {
		SearchResult []struct {
			Item []Item `json:"item"`
		} `json:"searchResult"`
	} `json:"findCompletedItemsResponse"`
}

type Item struct {
	Title         []string        `json:"title"`
	ItemID        []string        `json:"itemId"`
	SellingStatus []SellingStatus `json:"sellingStatus"`
	ShippingInfo  []ShippingInfo  `json:"shippingInfo"`
	Condition     []Condition     `json:"condition"`
	ListingInfo   []ListingInfo   `json:"listingInfo"`
}

type SellingStatus struct {
	CurrentPrice []Money  `json:"currentPrice"`
	SellingState []string `json:"sellingState"`
}

type Money struct {
	Value      string `json:"__value__"`
	CurrencyID string `json:"@currencyId"`
}

type ShippingInfo struct {
	ShippingServiceCost []Money `json:"shippingServiceCost"`
}

type Condition struct {
	ConditionDisplayName []string `json:"conditionDisplayName"`
}

type ListingInfo struct {
	EndTime []string `json:"endTime"`
}

// Items flattens the response envelope.
func (r *FindCompletedItemsResponse) Items() []Item {
	if len(r.FindCompletedItemsResponse) == 0 || len(r.FindCompletedItemsResponse[0].SearchResult) == 0 {
		return nil
	}
	return r.FindCompletedItemsResponse[0].SearchResult[0].Item
}

// FindCompletedItems searches eBay completed listings for the keywords,
// restricted to listings that actually sold.
func (c *EbayClient) FindCompletedItems(ctx context.Context, params FindCompletedItemsParams) (*FindCompletedItemsResponse, error) {
	token, err := c.tokenManager.Token()
	if err != nil {
		return nil, fmt.Errorf("ensuring ebay token: %w", err)
	}

	maxResults := params.MaxResults
	if maxResults <= 0 || maxResults > maxEntriesPerPage {
		maxResults = maxEntriesPerPage
	}

	query := url.Values{}
	query.Set("OPERATION-NAME", findingOperation)
	query.Set("SERVICE-VERSION", findingServiceVersion)
	query.Set("SECURITY-APPNAME", c.cfg.Ebay.AppID)
	query.Set("RESPONSE-DATA-FORMAT", "JSON")
	query.Set("keywords", params.Keywords)
	query.Set("paginationInput.entriesPerPage", strconv.Itoa(maxResults))
	query.Set("sortOrder", "EndTimeSoonest")

	// Item filters: sold items only, plus condition when known.
	filterIndex := 0
	query.Set(fmt.Sprintf("itemFilter(%d).name", filterIndex), "SoldItemsOnly")
	query.Set(fmt.Sprintf("itemFilter(%d).value", filterIndex), "true")
	filterIndex++

	if params.ConditionID != "" {
		query.Set(fmt.Sprintf("itemFilter(%d).name", filterIndex), "Condition")
		query.Set(fmt.Sprintf("itemFilter(%d).value", filterIndex), params.ConditionID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Ebay.FindingURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building finding request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling finding api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading finding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status":   resp.StatusCode,
			"keywords": params.Keywords,
		}).Error("ebay: finding api returned non-OK status")
		return nil, fmt.Errorf("finding api returned %d", resp.StatusCode)
	}

	var response FindCompletedItemsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding finding response: %w", err)
	}

	return &response, nil
}
