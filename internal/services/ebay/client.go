package ebay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"sellerhub/internal/logger"
	"sellerhub/internal/models"
)

const (
	productionEndpoint = "https://api.ebay.com/ws/api.dll"
	sandboxEndpoint    = "https://api.sandbox.ebay.com/ws/api.dll"
	compatibilityLevel = "1193"
)

// TokenSource supplies the IAF token sent with every Trading call. Token
// refresh lives behind this interface; the client never caches tokens
// itself.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource for a token that is managed elsewhere.
type StaticToken string

func (t StaticToken) AccessToken(ctx context.Context) (string, error) {
	return string(t), nil
}

// Client dispatches Trading API calls. Each call is a stateless
// request/response; retry policy belongs to the caller.
type Client struct {
	httpClient  *http.Client
	tokens      TokenSource
	transformer *Transformer
	endpoint    string
	logger      *logger.Logger
}

// NewClient creates a Trading API client against the production or sandbox
// endpoint.
func NewClient(tokens TokenSource, sandbox bool, logger *logger.Logger) *Client {
	endpoint := productionEndpoint
	if sandbox {
		endpoint = sandboxEndpoint
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens:      tokens,
		transformer: NewTransformer(),
		endpoint:    endpoint,
		logger:      logger,
	}
}

// AddFixedPriceItem creates a fixed-price listing. A listing flagged
// verifyOnly is routed to VerifyAddFixedPriceItem so sellers can dry-run
// fees and validation without publishing.
func (c *Client) AddFixedPriceItem(ctx context.Context, listing *models.TradingListingItem) (*CallResponse, error) {
	callName := "AddFixedPriceItem"
	if listing.VerifyOnly {
		callName = "VerifyAddFixedPriceItem"
	}
	item := c.transformer.Transform(listing, listing.Marketplace)
	return c.call(ctx, callName, listing.Marketplace, RequestBody{Item: item})
}

// ReviseFixedPriceItem updates an existing listing in place.
func (c *Client) ReviseFixedPriceItem(ctx context.Context, itemID string, listing *models.TradingListingItem) (*CallResponse, error) {
	item := c.transformer.Transform(listing, listing.Marketplace)
	item.ItemID = itemID
	return c.call(ctx, "ReviseFixedPriceItem", listing.Marketplace, RequestBody{Item: item})
}

// RelistFixedPriceItem relists an ended listing under a new item ID.
func (c *Client) RelistFixedPriceItem(ctx context.Context, itemID string, listing *models.TradingListingItem) (*CallResponse, error) {
	item := c.transformer.Transform(listing, listing.Marketplace)
	item.ItemID = itemID
	return c.call(ctx, "RelistFixedPriceItem", listing.Marketplace, RequestBody{Item: item})
}

// EndFixedPriceItem ends an active listing. Reason defaults to
// NotAvailable when empty.
func (c *Client) EndFixedPriceItem(ctx context.Context, itemID, reason, marketplace string) (*CallResponse, error) {
	if reason == "" {
		reason = "NotAvailable"
	}
	return c.call(ctx, "EndFixedPriceItem", marketplace, RequestBody{ItemID: itemID, EndingReason: reason})
}

// GetItem fetches the remote state of a listing.
func (c *Client) GetItem(ctx context.Context, itemID, marketplace string) (*CallResponse, error) {
	return c.call(ctx, "GetItem", marketplace, RequestBody{ItemID: itemID, DetailLevel: "ReturnAll"})
}

// call builds the envelope, posts it with the Trading API headers and
// parses the acknowledgement. Transport errors and non-Success
// acknowledgements both propagate to the caller unmodified.
func (c *Client) call(ctx context.Context, callName, marketplace string, body RequestBody) (*CallResponse, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting access token: %w", err)
	}

	payload, err := BuildRequest(callName, body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", callName, err)
	}

	req.Header.Set("X-EBAY-API-IAF-TOKEN", token)
	req.Header.Set("X-EBAY-API-SITEID", strconv.Itoa(SiteIDFor(marketplace)))
	req.Header.Set("X-EBAY-API-COMPATIBILITY-LEVEL", compatibilityLevel)
	req.Header.Set("X-EBAY-API-CALL-NAME", callName)
	req.Header.Set("Content-Type", "text/xml")

	c.logger.Debug("Trading call %s (marketplace=%s, site=%d)", callName, marketplace, SiteIDFor(marketplace))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing %s request: %w", callName, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", callName, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s failed with status %d: %s", callName, resp.StatusCode, string(data))
	}

	return ParseResponse(data, callName)
}
