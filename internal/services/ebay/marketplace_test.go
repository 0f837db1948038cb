package ebay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Germany", "DE"},
		{"germany", "DE"},
		{"de", "DE"},
		{"DE", "DE"},
		{"United Kingdom", "GB"},
		{"uk", "UK"}, // two letters pass through uppercased, no aliasing
		{"usa", "US"},
		{"Unknownland", "UNKNOWNLAND"},
		{"  france  ", "FR"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCountry(tt.input), "input %q", tt.input)
	}
}

func TestConfigFor(t *testing.T) {
	de := ConfigFor("EBAY_DE")
	assert.Equal(t, "EUR", de.Currency)
	assert.Equal(t, "DE", de.Country)
	assert.Equal(t, "DE_DHLPaket", de.ShippingService)
	assert.Equal(t, 77, de.SiteID)

	// Unknown marketplaces fall back to the US defaults.
	unknown := ConfigFor("EBAY_MARS")
	assert.Equal(t, "USD", unknown.Currency)
	assert.Equal(t, "US", unknown.Country)
	assert.Equal(t, "Other", unknown.ShippingService)
	assert.Equal(t, 0, unknown.SiteID)
}

func TestMarketplaceLookups(t *testing.T) {
	assert.Equal(t, "GBP", CurrencyFor("EBAY_UK"))
	assert.Equal(t, "CH", CountryFor("EBAY_CH"))
	assert.Equal(t, "FR_ColiPoste", DefaultShippingServiceFor("EBAY_FR"))
	assert.Equal(t, 3, SiteIDFor("EBAY_UK"))
	assert.Equal(t, "USD", CurrencyFor(""))
}
