package ebay

import "strings"

// MarketplaceConfig holds the defaults applied when a listing doesn't specify
// its own currency, country or shipping service.
type MarketplaceConfig struct {
	Currency        string
	Country         string
	ShippingService string
	SiteID          int
}

// marketplaceConfigs covers the marketplaces the application supports. The
// site IDs come from eBay's Trading API site code table and are sent in the
// X-EBAY-API-SITEID header.
var marketplaceConfigs = map[string]MarketplaceConfig{
	"EBAY_US": {Currency: "USD", Country: "US", ShippingService: "USPSPriority", SiteID: 0},
	"EBAY_UK": {Currency: "GBP", Country: "GB", ShippingService: "UK_RoyalMailFirstClassStandard", SiteID: 3},
	"EBAY_DE": {Currency: "EUR", Country: "DE", ShippingService: "DE_DHLPaket", SiteID: 77},
	"EBAY_AU": {Currency: "AUD", Country: "AU", ShippingService: "AU_Regular", SiteID: 15},
	"EBAY_CA": {Currency: "CAD", Country: "CA", ShippingService: "CA_RegularParcel", SiteID: 2},
	"EBAY_FR": {Currency: "EUR", Country: "FR", ShippingService: "FR_ColiPoste", SiteID: 71},
	"EBAY_IT": {Currency: "EUR", Country: "IT", ShippingService: "IT_RegularMail", SiteID: 101},
	"EBAY_ES": {Currency: "EUR", Country: "ES", ShippingService: "ES_StandardInternational", SiteID: 186},
	"EBAY_CH": {Currency: "CHF", Country: "CH", ShippingService: "CH_SwissPostPriority", SiteID: 193},
	"EBAY_AT": {Currency: "EUR", Country: "AT", ShippingService: "AT_StandardDispatch", SiteID: 16},
	"EBAY_BE": {Currency: "EUR", Country: "BE", ShippingService: "BE_StandardDelivery", SiteID: 123},
	"EBAY_NL": {Currency: "EUR", Country: "NL", ShippingService: "NL_StandardDelivery", SiteID: 146},
}

// defaultMarketplace is used when a marketplace code is not in the table.
var defaultMarketplace = MarketplaceConfig{Currency: "USD", Country: "US", ShippingService: "Other", SiteID: 0}

// ConfigFor returns the marketplace configuration for the given code,
// falling back to the US defaults for unknown marketplaces.
func ConfigFor(marketplace string) MarketplaceConfig {
	if cfg, ok := marketplaceConfigs[strings.ToUpper(strings.TrimSpace(marketplace))]; ok {
		return cfg
	}
	return defaultMarketplace
}

// CurrencyFor returns the default currency for a marketplace.
func CurrencyFor(marketplace string) string {
	return ConfigFor(marketplace).Currency
}

// CountryFor returns the default country code for a marketplace.
func CountryFor(marketplace string) string {
	return ConfigFor(marketplace).Country
}

// DefaultShippingServiceFor returns the shipping service used when a listing
// carries neither business policies nor explicit shipping details.
func DefaultShippingServiceFor(marketplace string) string {
	return ConfigFor(marketplace).ShippingService
}

// SiteIDFor returns the numeric Trading API site ID for a marketplace.
func SiteIDFor(marketplace string) int {
	return ConfigFor(marketplace).SiteID
}

// countryNames maps common country names to their ISO-2 codes. The table is
// intentionally partial: it catches the names sellers actually type, and
// anything unrecognized is passed through for eBay to validate.
var countryNames = map[string]string{
	"united states":            "US",
	"united states of america": "US",
	"usa":                      "US",
	"united kingdom":           "GB",
	"great britain":            "GB",
	"england":                  "GB",
	"germany":                  "DE",
	"deutschland":              "DE",
	"australia":                "AU",
	"canada":                   "CA",
	"france":                   "FR",
	"italy":                    "IT",
	"spain":                    "ES",
	"switzerland":              "CH",
	"austria":                  "AT",
	"belgium":                  "BE",
	"netherlands":              "NL",
	"holland":                  "NL",
	"ireland":                  "IE",
	"poland":                   "PL",
	"portugal":                 "PT",
	"sweden":                   "SE",
	"norway":                   "NO",
	"denmark":                  "DK",
	"finland":                  "FI",
	"greece":                   "GR",
	"czech republic":           "CZ",
	"japan":                    "JP",
	"china":                    "CN",
	"hong kong":                "HK",
	"singapore":                "SG",
	"india":                    "IN",
	"mexico":                   "MX",
	"brazil":                   "BR",
	"new zealand":              "NZ",
}

// NormalizeCountry converts a country name or code to an uppercase ISO-2
// code. Already-valid two-letter codes are uppercased, recognized names are
// mapped, and anything else is returned uppercased as-is so eBay can reject
// it with its own error code. It never fails.
func NormalizeCountry(input string) string {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) == 2 {
		return strings.ToUpper(trimmed)
	}
	if code, ok := countryNames[strings.ToLower(trimmed)]; ok {
		return code
	}
	return strings.ToUpper(trimmed)
}
