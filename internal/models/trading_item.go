package models

import "encoding/json"

// TradingListingItem is the canonical, marketplace-agnostic description of a
// listing as accepted by the API. Everything except title, description,
// primary category, start price and quantity is optional; the transformer in
// the ebay service owns the defaulting rules.
type TradingListingItem struct {
	SKU               string    `json:"sku,omitempty"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	SubTitle          *string   `json:"subTitle,omitempty"`
	PrimaryCategory   Category  `json:"primaryCategory"`
	SecondaryCategory *Category `json:"secondaryCategory,omitempty"`

	StartPrice    float64  `json:"startPrice"`
	Quantity      int      `json:"quantity"`
	BuyItNowPrice *float64 `json:"buyItNowPrice,omitempty"`
	ReservePrice  *float64 `json:"reservePrice,omitempty"`
	LotSize       *int     `json:"lotSize,omitempty"`

	ListingType     *string `json:"listingType,omitempty"`
	ListingDuration *string `json:"listingDuration,omitempty"`
	PrivateListing  *bool   `json:"privateListing,omitempty"`
	ScheduleTime    *string `json:"scheduleTime,omitempty"`

	BestOfferEnabled         *bool    `json:"bestOfferEnabled,omitempty"`
	BestOfferAutoAcceptPrice *float64 `json:"bestOfferAutoAcceptPrice,omitempty"`
	MinimumBestOfferPrice    *float64 `json:"minimumBestOfferPrice,omitempty"`
	OriginalRetailPrice      *float64 `json:"originalRetailPrice,omitempty"`
	VATPercent               *float64 `json:"vatPercent,omitempty"`

	ConditionID          *int    `json:"conditionId,omitempty"`
	Condition            *string `json:"condition,omitempty"`
	ConditionDescription *string `json:"conditionDescription,omitempty"`

	Marketplace string  `json:"marketplace,omitempty"`
	Country     *string `json:"country,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	Location    *string `json:"location,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`
	VerifyOnly  bool    `json:"verifyOnly,omitempty"`

	PictureURLs []string `json:"pictureUrls,omitempty"`
	GalleryType *string  `json:"galleryType,omitempty"`

	ItemSpecifics []ItemSpecific `json:"itemSpecifics,omitempty"`

	ProductIdentifiers *ProductIdentifiers `json:"productIdentifiers,omitempty"`
	Compatibilities    []Compatibility     `json:"compatibilities,omitempty"`

	DispatchTimeMax *int             `json:"dispatchTimeMax,omitempty"`
	ShippingDetails *ShippingDetails `json:"shippingDetails,omitempty"`
	ShipToLocations []string         `json:"shipToLocations,omitempty"`
	ReturnPolicy    *ReturnPolicy    `json:"returnPolicy,omitempty"`
	SellerProfiles  *SellerProfiles  `json:"sellerProfiles,omitempty"`

	PaymentMethods []string `json:"paymentMethods,omitempty"`
	AutoPay        *bool    `json:"autoPay,omitempty"`

	Regulatory          *Regulatory     `json:"regulatory,omitempty"`
	EcoParticipationFee *float64        `json:"ecoParticipationFee,omitempty"`
	CustomPolicies      *CustomPolicies `json:"customPolicies,omitempty"`

	StoreCategoryID          *int64 `json:"storeCategoryId,omitempty"`
	StoreCategory2ID         *int64 `json:"storeCategory2Id,omitempty"`
	OutOfStockControl        *bool  `json:"outOfStockControl,omitempty"`
	DisableBuyerRequirements *bool  `json:"disableBuyerRequirements,omitempty"`
}

type Category struct {
	CategoryID string `json:"categoryId"`
}

// ItemSpecific is one category attribute. Value accepts either a single
// string or an array in JSON.
type ItemSpecific struct {
	Name  string     `json:"name"`
	Value StringList `json:"value"`
}

// StringList unmarshals from either a JSON string or a JSON array of
// strings, so callers can write "value": "Red" and "value": ["Red", "Blue"]
// interchangeably.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

type ProductIdentifiers struct {
	UPC                       *string `json:"upc,omitempty"`
	EAN                       *string `json:"ean,omitempty"`
	ISBN                      *string `json:"isbn,omitempty"`
	Brand                     *string `json:"brand,omitempty"`
	MPN                       *string `json:"mpn,omitempty"`
	IncludeEbayProductDetails *bool   `json:"includeEbayProductDetails,omitempty"`
}

type Compatibility struct {
	NameValues []CompatibilityNameValue `json:"nameValues"`
	Notes      *string                  `json:"notes,omitempty"`
}

type CompatibilityNameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ShippingDetails struct {
	ShippingType                        *string                 `json:"shippingType,omitempty"`
	GlobalShipping                      *bool                   `json:"globalShipping,omitempty"`
	ShippingServiceOptions              []ShippingServiceOption `json:"shippingServiceOptions,omitempty"`
	InternationalShippingServiceOptions []ShippingServiceOption `json:"internationalShippingServiceOptions,omitempty"`
	ExcludeShipToLocations              []string                `json:"excludeShipToLocations,omitempty"`
}

type ShippingServiceOption struct {
	Priority        *int     `json:"priority,omitempty"`
	ShippingService string   `json:"shippingService"`
	Cost            *float64 `json:"cost,omitempty"`
	AdditionalCost  *float64 `json:"additionalCost,omitempty"`
	FreeShipping    *bool    `json:"freeShipping,omitempty"`
	ShipToLocations []string `json:"shipToLocations,omitempty"`
}

type ReturnPolicy struct {
	ReturnsAccepted              *string `json:"returnsAccepted,omitempty"`
	Refund                       *string `json:"refund,omitempty"`
	ReturnsWithin                *string `json:"returnsWithin,omitempty"`
	ShippingCostPaidBy           *string `json:"shippingCostPaidBy,omitempty"`
	InternationalReturnsAccepted *string `json:"internationalReturnsAccepted,omitempty"`
	Description                  *string `json:"description,omitempty"`
}

type SellerProfiles struct {
	SellerShippingProfile *SellerProfile `json:"sellerShippingProfile,omitempty"`
	SellerReturnProfile   *SellerProfile `json:"sellerReturnProfile,omitempty"`
	SellerPaymentProfile  *SellerProfile `json:"sellerPaymentProfile,omitempty"`
}

type SellerProfile struct {
	ProfileID   int64  `json:"profileId,omitempty"`
	ProfileName string `json:"profileName,omitempty"`
}

// Regulatory mirrors the EU compliance data a listing may carry: GPSR
// manufacturer and responsible-person contacts, hazmat and product-safety
// labelling, energy label and compliance document references.
type Regulatory struct {
	Manufacturer          *RegulatoryContact     `json:"manufacturer,omitempty"`
	ResponsiblePersons    []RegulatoryContact    `json:"responsiblePersons,omitempty"`
	ProductSafety         *ProductSafety         `json:"productSafety,omitempty"`
	Hazmat                *Hazmat                `json:"hazmat,omitempty"`
	EnergyEfficiencyLabel *EnergyEfficiencyLabel `json:"energyEfficiencyLabel,omitempty"`
	RepairScore           *float64               `json:"repairScore,omitempty"`
	DocumentIDs           []string               `json:"documentIds,omitempty"`
}

type RegulatoryContact struct {
	CompanyName     *string    `json:"companyName,omitempty"`
	Street1         *string    `json:"street1,omitempty"`
	Street2         *string    `json:"street2,omitempty"`
	City            *string    `json:"city,omitempty"`
	StateOrProvince *string    `json:"stateOrProvince,omitempty"`
	PostalCode      *string    `json:"postalCode,omitempty"`
	Country         *string    `json:"country,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Email           *string    `json:"email,omitempty"`
	ContactURL      *string    `json:"contactUrl,omitempty"`
	Types           StringList `json:"types,omitempty"`
}

type ProductSafety struct {
	Component  *string    `json:"component,omitempty"`
	Pictograms StringList `json:"pictograms,omitempty"`
	Statements StringList `json:"statements,omitempty"`
}

type Hazmat struct {
	SignalWord *string    `json:"signalWord,omitempty"`
	Component  *string    `json:"component,omitempty"`
	Pictograms StringList `json:"pictograms,omitempty"`
	Statements StringList `json:"statements,omitempty"`
}

type EnergyEfficiencyLabel struct {
	ImageDescription        *string `json:"imageDescription,omitempty"`
	ImageURL                *string `json:"imageUrl,omitempty"`
	ProductInformationSheet *string `json:"productInformationSheet,omitempty"`
}

type CustomPolicies struct {
	ProductCompliancePolicyIDs        []int64          `json:"productCompliancePolicyIds,omitempty"`
	TakeBackPolicyID                  *int64           `json:"takeBackPolicyId,omitempty"`
	RegionalProductCompliancePolicies []RegionalPolicy `json:"regionalProductCompliancePolicies,omitempty"`
	RegionalTakeBackPolicies          []RegionalPolicy `json:"regionalTakeBackPolicies,omitempty"`
}

type RegionalPolicy struct {
	Country   string  `json:"country"`
	PolicyIDs []int64 `json:"policyIds"`
}
