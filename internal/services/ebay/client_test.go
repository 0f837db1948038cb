package ebay

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sellerhub/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(StaticToken("test-iaf-token"), true, logger.New("error"))
	client.endpoint = server.URL
	return client
}

func TestAddFixedPriceItem(t *testing.T) {
	var gotHeaders http.Header
	var gotBody string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?>
<AddFixedPriceItemResponse><Ack>Success</Ack><ItemID>110556628954</ItemID></AddFixedPriceItemResponse>`))
	})

	listing := baseListing()
	listing.Marketplace = "EBAY_DE"

	resp, err := client.AddFixedPriceItem(context.Background(), listing)
	require.NoError(t, err)
	assert.Equal(t, "110556628954", resp.ItemID)

	assert.Equal(t, "test-iaf-token", gotHeaders.Get("X-EBAY-API-IAF-TOKEN"))
	assert.Equal(t, "77", gotHeaders.Get("X-EBAY-API-SITEID"))
	assert.Equal(t, "1193", gotHeaders.Get("X-EBAY-API-COMPATIBILITY-LEVEL"))
	assert.Equal(t, "AddFixedPriceItem", gotHeaders.Get("X-EBAY-API-CALL-NAME"))
	assert.Equal(t, "text/xml", gotHeaders.Get("Content-Type"))

	assert.Contains(t, gotBody, "<AddFixedPriceItemRequest")
	assert.Contains(t, gotBody, "<Currency>EUR</Currency>")
}

func TestAddFixedPriceItemVerifyOnly(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "VerifyAddFixedPriceItem", r.Header.Get("X-EBAY-API-CALL-NAME"))
		w.Write([]byte(`<VerifyAddFixedPriceItemResponse><Ack>Success</Ack></VerifyAddFixedPriceItemResponse>`))
	})

	listing := baseListing()
	listing.Marketplace = "EBAY_US"
	listing.VerifyOnly = true

	_, err := client.AddFixedPriceItem(context.Background(), listing)
	require.NoError(t, err)
}

func TestCallSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?>
<AddFixedPriceItemResponse>
  <Ack>Failure</Ack>
  <Errors>
    <ShortMessage>Auth token is hard expired.</ShortMessage>
    <ErrorCode>932</ErrorCode>
    <SeverityCode>Error</SeverityCode>
  </Errors>
</AddFixedPriceItemResponse>`))
	})

	_, err := client.AddFixedPriceItem(context.Background(), baseListing())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failure", apiErr.Ack)
	assert.Equal(t, "932", apiErr.Errors[0].ErrorCode)
}

func TestCallSurfacesTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := client.AddFixedPriceItem(context.Background(), baseListing())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestEndFixedPriceItemDefaultsReason(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`<EndFixedPriceItemResponse><Ack>Success</Ack><EndTime>2026-01-12T10:00:00.000Z</EndTime></EndFixedPriceItemResponse>`))
	})

	resp, err := client.EndFixedPriceItem(context.Background(), "110556628954", "", "EBAY_UK")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-12T10:00:00.000Z", resp.EndTime)
	assert.Contains(t, gotBody, "<EndingReason>NotAvailable</EndingReason>")
}

func TestGetItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GetItem", r.Header.Get("X-EBAY-API-CALL-NAME"))
		w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?>
<GetItemResponse>
  <Ack>Success</Ack>
  <Item>
    <ItemID>110556628954</ItemID>
    <Title>Widget</Title>
    <SellingStatus><ListingStatus>Active</ListingStatus><QuantitySold>2</QuantitySold></SellingStatus>
  </Item>
</GetItemResponse>`))
	})

	resp, err := client.GetItem(context.Background(), "110556628954", "EBAY_US")
	require.NoError(t, err)
	require.NotNil(t, resp.Item)
	assert.Equal(t, "Widget", resp.Item.Title)
	assert.Equal(t, "Active", resp.Item.SellingStatus.ListingStatus)
	assert.Equal(t, 2, resp.Item.SellingStatus.QuantitySold)
}

func TestTokenSourceFailureShortCircuits(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	client.tokens = failingTokenSource{}

	_, err := client.AddFixedPriceItem(context.Background(), baseListing())
	require.Error(t, err)
	assert.False(t, called)
}

type failingTokenSource struct{}

func (failingTokenSource) AccessToken(ctx context.Context) (string, error) {
	return "", assert.AnError
}
