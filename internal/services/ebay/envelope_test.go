package ebay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestEnvelope(t *testing.T) {
	item := &Item{
		Title:       "Widget",
		Description: &CDATA{Text: "<p>HTML description</p>"},
		ConditionID: 1000,
		Quantity:    1,
		StartPrice:  NewMoney(9.99, "USD"),
	}

	data, err := BuildRequest("AddFixedPriceItem", RequestBody{Item: item})
	require.NoError(t, err)

	xml := string(data)
	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, xml, `<AddFixedPriceItemRequest xmlns="urn:ebay:apis:eBLBaseComponents">`)
	assert.Contains(t, xml, "<ErrorLanguage>en_US</ErrorLanguage>")
	assert.Contains(t, xml, "<WarningLevel>High</WarningLevel>")
	// Descriptions go out as CDATA so embedded markup survives unescaped.
	assert.Contains(t, xml, "<![CDATA[<p>HTML description</p>]]>")
	assert.Contains(t, xml, `<StartPrice currencyID="USD">9.99</StartPrice>`)
	assert.Contains(t, xml, "</AddFixedPriceItemRequest>")
}

func TestBuildRequestItemIDOnly(t *testing.T) {
	data, err := BuildRequest("EndFixedPriceItem", RequestBody{ItemID: "110556628954", EndingReason: "NotAvailable"})
	require.NoError(t, err)

	xml := string(data)
	assert.Contains(t, xml, "<ItemID>110556628954</ItemID>")
	assert.Contains(t, xml, "<EndingReason>NotAvailable</EndingReason>")
	assert.NotContains(t, xml, "<Item>")
}

func TestParseResponseSuccess(t *testing.T) {
	payload := []byte(`<?xml version="1.0" encoding="utf-8"?>
<AddFixedPriceItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Timestamp>2026-01-12T10:00:00.000Z</Timestamp>
  <Ack>Success</Ack>
  <Version>1193</Version>
  <ItemID>123</ItemID>
  <StartTime>2026-01-12T10:00:00.000Z</StartTime>
  <Fees>
    <Fee><Name>InsertionFee</Name><Fee currencyID="USD">0.35</Fee></Fee>
  </Fees>
</AddFixedPriceItemResponse>`)

	resp, err := ParseResponse(payload, "AddFixedPriceItem")
	require.NoError(t, err)
	assert.Equal(t, "Success", resp.Ack)
	assert.Equal(t, "123", resp.ItemID)
	assert.Empty(t, resp.Warnings)
	require.NotNil(t, resp.Fees)
	assert.Equal(t, "InsertionFee", resp.Fees.Fee[0].Name)
	assert.Equal(t, "0.35", resp.Fees.Fee[0].Fee.Value)
}

func TestParseResponseFailure(t *testing.T) {
	payload := []byte(`<?xml version="1.0" encoding="utf-8"?>
<AddFixedPriceItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Failure</Ack>
  <Errors>
    <ShortMessage>Input data is invalid.</ShortMessage>
    <LongMessage>Input data for tag Item.Title is invalid.</LongMessage>
    <ErrorCode>37</ErrorCode>
    <SeverityCode>Error</SeverityCode>
  </Errors>
</AddFixedPriceItemResponse>`)

	resp, err := ParseResponse(payload, "AddFixedPriceItem")
	assert.Nil(t, resp)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failure", apiErr.Ack)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "37", apiErr.Errors[0].ErrorCode)
	assert.Contains(t, apiErr.Error(), "Ack=Failure")
	assert.Contains(t, apiErr.Error(), "37: Input data is invalid.")
}

func TestParseResponseMultipleErrors(t *testing.T) {
	payload := []byte(`<?xml version="1.0" encoding="utf-8"?>
<ReviseFixedPriceItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>PartialFailure</Ack>
  <Errors>
    <ShortMessage>First problem.</ShortMessage>
    <ErrorCode>21916</ErrorCode>
    <SeverityCode>Error</SeverityCode>
  </Errors>
  <Errors>
    <ShortMessage>Second problem.</ShortMessage>
    <ErrorCode>21917</ErrorCode>
    <SeverityCode>Error</SeverityCode>
  </Errors>
</ReviseFixedPriceItemResponse>`)

	_, err := ParseResponse(payload, "ReviseFixedPriceItem")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "PartialFailure", apiErr.Ack)
	assert.Len(t, apiErr.Errors, 2)
}

func TestParseResponseWarningIsSuccess(t *testing.T) {
	payload := []byte(`<?xml version="1.0" encoding="utf-8"?>
<AddFixedPriceItemResponse xmlns="urn:ebay:apis:eBLBaseComponents">
  <Ack>Warning</Ack>
  <ItemID>456</ItemID>
  <Errors>
    <ShortMessage>Condition is required for this category.</ShortMessage>
    <ErrorCode>21917091</ErrorCode>
    <SeverityCode>Warning</SeverityCode>
  </Errors>
</AddFixedPriceItemResponse>`)

	resp, err := ParseResponse(payload, "AddFixedPriceItem")
	require.NoError(t, err)
	assert.Equal(t, "456", resp.ItemID)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "21917091", resp.Warnings[0].ErrorCode)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	item := NewTransformer().Transform(baseListing(), "EBAY_US")
	_, err := BuildRequest("AddFixedPriceItem", RequestBody{Item: item})
	require.NoError(t, err)

	resp, err := ParseResponse([]byte(`<?xml version="1.0" encoding="utf-8"?>
<AddFixedPriceItemResponse><Ack>Success</Ack><ItemID>123</ItemID></AddFixedPriceItemResponse>`), "AddFixedPriceItem")
	require.NoError(t, err)
	assert.Equal(t, "123", resp.ItemID)
}
