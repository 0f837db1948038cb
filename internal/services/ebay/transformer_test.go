package ebay

import (
	"encoding/json"
	"testing"

	"sellerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func baseListing() *models.TradingListingItem {
	return &models.TradingListingItem{
		Title:           "Test",
		Description:     "d",
		PrimaryCategory: models.Category{CategoryID: "123"},
		StartPrice:      50,
		Quantity:        1,
	}
}

func TestTransformMinimalListing(t *testing.T) {
	item := NewTransformer().Transform(baseListing(), "EBAY_FR")

	assert.Equal(t, "EUR", item.Currency)
	assert.Equal(t, "FR", item.Country)
	assert.Equal(t, "FR", item.Location)
	assert.Equal(t, 1000, item.ConditionID)
	assert.Equal(t, "Test", item.Title)
	assert.Equal(t, "d", item.Description.Text)
	assert.Equal(t, "123", item.PrimaryCategory.CategoryID)

	require.NotNil(t, item.ShippingDetails)
	require.Len(t, item.ShippingDetails.ShippingServiceOptions, 1)
	option := item.ShippingDetails.ShippingServiceOptions[0]
	assert.Equal(t, "FR_ColiPoste", option.ShippingService)
	assert.Equal(t, "0.00", option.ShippingServiceCost.Value)
	assert.Equal(t, "EUR", option.ShippingServiceCost.CurrencyID)

	require.NotNil(t, item.ReturnPolicy)
	assert.Equal(t, "ReturnsAccepted", item.ReturnPolicy.ReturnsAcceptedOption)
	assert.Equal(t, "MoneyBack", item.ReturnPolicy.RefundOption)
	assert.Equal(t, "Days_30", item.ReturnPolicy.ReturnsWithinOption)
	assert.Equal(t, "Buyer", item.ReturnPolicy.ShippingCostPaidByOption)
}

func TestTransformMoneyEncoding(t *testing.T) {
	listing := baseListing()
	listing.StartPrice = 99.99
	item := NewTransformer().Transform(listing, "EBAY_DE")

	assert.Equal(t, "EUR", item.StartPrice.CurrencyID)
	assert.Equal(t, "99.99", item.StartPrice.Value)
}

func TestTransformCurrencyOverride(t *testing.T) {
	listing := baseListing()
	listing.StartPrice = 10
	listing.Currency = strPtr("GBP")
	item := NewTransformer().Transform(listing, "EBAY_US")

	assert.Equal(t, "GBP", item.StartPrice.CurrencyID)
	assert.Equal(t, "GBP", item.Currency)
}

func TestTransformConditionPrecedence(t *testing.T) {
	listing := baseListing()
	listing.ConditionID = intPtr(3000)
	listing.Condition = strPtr("New")
	item := NewTransformer().Transform(listing, "EBAY_US")

	assert.Equal(t, 3000, item.ConditionID)
}

func TestTransformCountryAndLocation(t *testing.T) {
	listing := baseListing()
	listing.Country = strPtr("Germany")
	item := NewTransformer().Transform(listing, "EBAY_US")

	assert.Equal(t, "DE", item.Country)
	// Location falls back to the resolved country, never left empty.
	assert.Equal(t, "DE", item.Location)

	listing.Location = strPtr("Berlin")
	item = NewTransformer().Transform(listing, "EBAY_US")
	assert.Equal(t, "Berlin", item.Location)
}

func TestTransformBusinessPolicySuppression(t *testing.T) {
	listing := baseListing()
	listing.SellerProfiles = &models.SellerProfiles{
		SellerShippingProfile: &models.SellerProfile{ProfileID: 6101234},
	}
	item := NewTransformer().Transform(listing, "EBAY_US")

	assert.Nil(t, item.ShippingDetails)
	assert.Nil(t, item.ReturnPolicy)
	require.NotNil(t, item.SellerProfiles)
	assert.Equal(t, int64(6101234), item.SellerProfiles.SellerShippingProfile.ShippingProfileID)
}

func TestTransformExplicitShippingWins(t *testing.T) {
	listing := baseListing()
	listing.ShippingDetails = &models.ShippingDetails{
		ShippingServiceOptions: []models.ShippingServiceOption{
			{ShippingService: "USPSMedia", Cost: floatPtr(3.49)},
			{ShippingService: "USPSPriority", Cost: floatPtr(8.25), AdditionalCost: floatPtr(1.00)},
		},
	}
	item := NewTransformer().Transform(listing, "EBAY_US")

	require.NotNil(t, item.ShippingDetails)
	require.Len(t, item.ShippingDetails.ShippingServiceOptions, 2)
	first := item.ShippingDetails.ShippingServiceOptions[0]
	assert.Equal(t, "USPSMedia", first.ShippingService)
	assert.Equal(t, "3.49", first.ShippingServiceCost.Value)
	assert.Equal(t, 1, first.ShippingServicePriority)
	second := item.ShippingDetails.ShippingServiceOptions[1]
	assert.Equal(t, 2, second.ShippingServicePriority)
	assert.Equal(t, "1.00", second.ShippingServiceAdditionalCost.Value)
}

func TestTransformInternationalOnlyShipping(t *testing.T) {
	listing := baseListing()
	listing.ShippingDetails = &models.ShippingDetails{
		InternationalShippingServiceOptions: []models.ShippingServiceOption{
			{ShippingService: "USPSPriorityMailInternational", Cost: floatPtr(24.50), ShipToLocations: []string{"Worldwide"}},
		},
		ExcludeShipToLocations: []string{"RU"},
	}
	item := NewTransformer().Transform(listing, "EBAY_US")

	require.NotNil(t, item.ShippingDetails)
	require.Len(t, item.ShippingDetails.InternationalShippingServiceOption, 1)
	intl := item.ShippingDetails.InternationalShippingServiceOption[0]
	assert.Equal(t, "USPSPriorityMailInternational", intl.ShippingService)
	assert.Equal(t, "24.50", intl.ShippingServiceCost.Value)
	assert.Equal(t, []string{"Worldwide"}, intl.ShipToLocation)
	assert.Equal(t, []string{"RU"}, item.ShippingDetails.ExcludeShipToLocation)

	// A domestic service is still synthesized alongside the international one.
	require.Len(t, item.ShippingDetails.ShippingServiceOptions, 1)
	domestic := item.ShippingDetails.ShippingServiceOptions[0]
	assert.Equal(t, "USPSPriority", domestic.ShippingService)
	assert.Equal(t, "0.00", domestic.ShippingServiceCost.Value)
}

func TestTransformItemSpecifics(t *testing.T) {
	listing := baseListing()
	listing.ItemSpecifics = []models.ItemSpecific{
		{Name: "Brand", Value: models.StringList{"Apple"}},
	}

	de := NewTransformer().Transform(listing, "EBAY_DE")
	require.NotNil(t, de.ItemSpecifics)
	require.Len(t, de.ItemSpecifics.NameValueList, 1)
	assert.Equal(t, "Marke", de.ItemSpecifics.NameValueList[0].Name)
	assert.Equal(t, []string{"Apple"}, de.ItemSpecifics.NameValueList[0].Value)

	us := NewTransformer().Transform(listing, "EBAY_US")
	assert.Equal(t, "Brand", us.ItemSpecifics.NameValueList[0].Name)
}

func TestTransformScalarSpecificValueBecomesArray(t *testing.T) {
	payload := []byte(`{
		"title": "Test", "description": "d",
		"primaryCategory": {"categoryId": "123"},
		"startPrice": 50, "quantity": 1,
		"itemSpecifics": [{"name": "Color", "value": "Red"}]
	}`)

	var listing models.TradingListingItem
	require.NoError(t, json.Unmarshal(payload, &listing))

	item := NewTransformer().Transform(&listing, "EBAY_US")
	require.NotNil(t, item.ItemSpecifics)
	assert.Equal(t, []string{"Red"}, item.ItemSpecifics.NameValueList[0].Value)
}

func TestTransformRegulatoryBlock(t *testing.T) {
	listing := baseListing()
	listing.Regulatory = &models.Regulatory{
		Manufacturer: &models.RegulatoryContact{
			CompanyName: strPtr("Acme GmbH"),
			Country:     strPtr("Germany"),
		},
		ResponsiblePersons: []models.RegulatoryContact{
			{CompanyName: strPtr("EU Rep Ltd"), Country: strPtr("ireland"), Types: models.StringList{"EUResponsiblePerson"}},
		},
		Hazmat: &models.Hazmat{
			SignalWord: strPtr("Danger"),
			Pictograms: models.StringList{"GHS02"},
			Statements: models.StringList{"H225"},
		},
		DocumentIDs: []string{"doc-1"},
	}

	item := NewTransformer().Transform(listing, "EBAY_DE")
	require.NotNil(t, item.Regulatory)
	assert.Equal(t, "DE", item.Regulatory.Manufacturer.Country)
	require.Len(t, item.Regulatory.ResponsiblePersons.ResponsiblePerson, 1)
	person := item.Regulatory.ResponsiblePersons.ResponsiblePerson[0]
	assert.Equal(t, "IE", person.Country)
	assert.Equal(t, []string{"EUResponsiblePerson"}, person.Types.Type)
	// Single pictogram still lands inside the container element.
	assert.Equal(t, []string{"GHS02"}, item.Regulatory.Hazmat.Pictograms.Pictogram)
	assert.Equal(t, []string{"H225"}, item.Regulatory.Hazmat.Statements.Statement)
	assert.Equal(t, []string{"doc-1"}, item.Regulatory.Documents.DocumentID)
}

func TestTransformPricingFields(t *testing.T) {
	listing := baseListing()
	listing.BuyItNowPrice = floatPtr(75)
	listing.ReservePrice = floatPtr(60)
	listing.EcoParticipationFee = floatPtr(0.35)
	listing.OriginalRetailPrice = floatPtr(120)
	item := NewTransformer().Transform(listing, "EBAY_FR")

	assert.Equal(t, "75.00", item.BuyItNowPrice.Value)
	assert.Equal(t, "EUR", item.BuyItNowPrice.CurrencyID)
	assert.Equal(t, "60.00", item.ReservePrice.Value)
	assert.Equal(t, "0.35", item.EcoParticipationFee.Value)
	require.NotNil(t, item.DiscountPriceInfo)
	assert.Equal(t, "120.00", item.DiscountPriceInfo.OriginalRetailPrice.Value)
}

// Transform never fails, whatever the input looks like.
func TestTransformTotality(t *testing.T) {
	transformer := NewTransformer()

	assert.NotPanics(t, func() {
		transformer.Transform(&models.TradingListingItem{}, "")
	})
	assert.NotPanics(t, func() {
		transformer.Transform(&models.TradingListingItem{
			Condition: strPtr("Mystery Condition"),
			Country:   strPtr(""),
		}, "EBAY_NOWHERE")
	})

	item := transformer.Transform(&models.TradingListingItem{}, "EBAY_XX")
	assert.Equal(t, 1000, item.ConditionID)
	assert.Equal(t, "USD", item.Currency)
	assert.Equal(t, "US", item.Country)
}
