package ebay

import (
	"encoding/xml"
	"strconv"
)

// Money is eBay's amount type: a decimal string with the currency carried as
// an attribute (<StartPrice currencyID="USD">99.99</StartPrice>).
type Money struct {
	CurrencyID string `xml:"currencyID,attr"`
	Value      string `xml:",chardata"`
}

// NewMoney formats an amount with two decimal places in the given currency.
func NewMoney(value float64, currency string) *Money {
	return &Money{CurrencyID: currency, Value: strconv.FormatFloat(value, 'f', 2, 64)}
}

// CDATA wraps text that may contain markup, such as listing descriptions, so
// it serializes inside a CDATA section instead of being entity-escaped.
type CDATA struct {
	Text string `xml:",cdata"`
}

// Item is the Trading API representation of a listing, shaped for eBay's XML
// schema. It is produced by the Transformer and never mutated afterwards.
type Item struct {
	XMLName xml.Name `xml:"Item"`

	ItemID      string `xml:"ItemID,omitempty"`
	SKU         string `xml:"SKU,omitempty"`
	Title       string `xml:"Title,omitempty"`
	Description *CDATA `xml:"Description,omitempty"`
	SubTitle    string `xml:"SubTitle,omitempty"`

	PrimaryCategory        *CategoryRef `xml:"PrimaryCategory,omitempty"`
	SecondaryCategory      *CategoryRef `xml:"SecondaryCategory,omitempty"`
	CategoryMappingAllowed bool         `xml:"CategoryMappingAllowed,omitempty"`

	StartPrice    *Money `xml:"StartPrice,omitempty"`
	BuyItNowPrice *Money `xml:"BuyItNowPrice,omitempty"`
	ReservePrice  *Money `xml:"ReservePrice,omitempty"`
	Quantity      int    `xml:"Quantity,omitempty"`
	LotSize       int    `xml:"LotSize,omitempty"`

	ListingType     string `xml:"ListingType,omitempty"`
	ListingDuration string `xml:"ListingDuration,omitempty"`
	PrivateListing  bool   `xml:"PrivateListing,omitempty"`
	ScheduleTime    string `xml:"ScheduleTime,omitempty"`

	BestOfferDetails  *BestOfferDetails  `xml:"BestOfferDetails,omitempty"`
	ListingDetails    *ListingDetails    `xml:"ListingDetails,omitempty"`
	DiscountPriceInfo *DiscountPriceInfo `xml:"DiscountPriceInfo,omitempty"`
	VATDetails        *VATDetails        `xml:"VATDetails,omitempty"`

	ConditionID          int    `xml:"ConditionID"`
	ConditionDescription string `xml:"ConditionDescription,omitempty"`

	Country    string `xml:"Country,omitempty"`
	Currency   string `xml:"Currency,omitempty"`
	Location   string `xml:"Location,omitempty"`
	PostalCode string `xml:"PostalCode,omitempty"`

	PictureDetails *PictureDetails         `xml:"PictureDetails,omitempty"`
	ItemSpecifics  *NameValueListContainer `xml:"ItemSpecifics,omitempty"`

	ProductListingDetails *ProductListingDetails `xml:"ProductListingDetails,omitempty"`
	ItemCompatibilityList *ItemCompatibilityList `xml:"ItemCompatibilityList,omitempty"`

	DispatchTimeMax int              `xml:"DispatchTimeMax,omitempty"`
	ShippingDetails *ShippingDetails `xml:"ShippingDetails,omitempty"`
	ShipToLocations []string         `xml:"ShipToLocations,omitempty"`
	ReturnPolicy    *ReturnPolicy    `xml:"ReturnPolicy,omitempty"`
	SellerProfiles  *SellerProfiles  `xml:"SellerProfiles,omitempty"`

	PaymentMethods []string `xml:"PaymentMethods,omitempty"`
	AutoPay        bool     `xml:"AutoPay,omitempty"`

	Regulatory          *Regulatory     `xml:"Regulatory,omitempty"`
	EcoParticipationFee *Money          `xml:"EcoParticipationFee,omitempty"`
	CustomPolicies      *CustomPolicies `xml:"CustomPolicies,omitempty"`

	DisableBuyerRequirements bool        `xml:"DisableBuyerRequirements,omitempty"`
	OutOfStockControl        bool        `xml:"OutOfStockControl,omitempty"`
	Storefront               *Storefront `xml:"Storefront,omitempty"`

	// SellingStatus only appears on items read back with GetItem.
	SellingStatus *SellingStatus `xml:"SellingStatus,omitempty"`
}

type SellingStatus struct {
	ListingStatus string `xml:"ListingStatus,omitempty"`
	QuantitySold  int    `xml:"QuantitySold,omitempty"`
	CurrentPrice  *Money `xml:"CurrentPrice,omitempty"`
}

type CategoryRef struct {
	CategoryID string `xml:"CategoryID"`
}

type BestOfferDetails struct {
	BestOfferEnabled bool `xml:"BestOfferEnabled"`
}

type ListingDetails struct {
	BestOfferAutoAcceptPrice *Money `xml:"BestOfferAutoAcceptPrice,omitempty"`
	MinimumBestOfferPrice    *Money `xml:"MinimumBestOfferPrice,omitempty"`
}

type DiscountPriceInfo struct {
	OriginalRetailPrice    *Money `xml:"OriginalRetailPrice,omitempty"`
	MinimumAdvertisedPrice *Money `xml:"MinimumAdvertisedPrice,omitempty"`
	SoldOneBay             bool   `xml:"SoldOneBay,omitempty"`
	SoldOffeBay            bool   `xml:"SoldOffeBay,omitempty"`
}

type VATDetails struct {
	VATPercent           float64 `xml:"VATPercent,omitempty"`
	BusinessSeller       bool    `xml:"BusinessSeller,omitempty"`
	RestrictedToBusiness bool    `xml:"RestrictedToBusiness,omitempty"`
}

type PictureDetails struct {
	GalleryType string   `xml:"GalleryType,omitempty"`
	PictureURL  []string `xml:"PictureURL"`
}

// NameValueListContainer wraps repeated NameValueList entries so a single
// specific still serializes inside the container element.
type NameValueListContainer struct {
	NameValueList []NameValueList `xml:"NameValueList"`
}

type NameValueList struct {
	Name  string   `xml:"Name"`
	Value []string `xml:"Value"`
}

type ProductListingDetails struct {
	UPC                       string    `xml:"UPC,omitempty"`
	EAN                       string    `xml:"EAN,omitempty"`
	ISBN                      string    `xml:"ISBN,omitempty"`
	BrandMPN                  *BrandMPN `xml:"BrandMPN,omitempty"`
	IncludeeBayProductDetails bool      `xml:"IncludeeBayProductDetails,omitempty"`
}

type BrandMPN struct {
	Brand string `xml:"Brand"`
	MPN   string `xml:"MPN"`
}

type ItemCompatibilityList struct {
	Compatibility []ItemCompatibility `xml:"Compatibility"`
}

type ItemCompatibility struct {
	NameValueList      []NameValueList `xml:"NameValueList"`
	CompatibilityNotes string          `xml:"CompatibilityNotes,omitempty"`
}

type ShippingDetails struct {
	ShippingType                       string                  `xml:"ShippingType,omitempty"`
	GlobalShipping                     bool                    `xml:"GlobalShipping,omitempty"`
	ShippingServiceOptions             []ShippingServiceOption `xml:"ShippingServiceOptions,omitempty"`
	InternationalShippingServiceOption []ShippingServiceOption `xml:"InternationalShippingServiceOption,omitempty"`
	ExcludeShipToLocation              []string                `xml:"ExcludeShipToLocation,omitempty"`
}

type ShippingServiceOption struct {
	ShippingServicePriority       int      `xml:"ShippingServicePriority,omitempty"`
	ShippingService               string   `xml:"ShippingService"`
	ShippingServiceCost           *Money   `xml:"ShippingServiceCost,omitempty"`
	ShippingServiceAdditionalCost *Money   `xml:"ShippingServiceAdditionalCost,omitempty"`
	FreeShipping                  bool     `xml:"FreeShipping,omitempty"`
	ShipToLocation                []string `xml:"ShipToLocation,omitempty"`
}

type ReturnPolicy struct {
	ReturnsAcceptedOption              string `xml:"ReturnsAcceptedOption,omitempty"`
	RefundOption                       string `xml:"RefundOption,omitempty"`
	ReturnsWithinOption                string `xml:"ReturnsWithinOption,omitempty"`
	ShippingCostPaidByOption           string `xml:"ShippingCostPaidByOption,omitempty"`
	InternationalReturnsAcceptedOption string `xml:"InternationalReturnsAcceptedOption,omitempty"`
	Description                        string `xml:"Description,omitempty"`
}

type SellerProfiles struct {
	SellerShippingProfile *SellerShippingProfile `xml:"SellerShippingProfile,omitempty"`
	SellerReturnProfile   *SellerReturnProfile   `xml:"SellerReturnProfile,omitempty"`
	SellerPaymentProfile  *SellerPaymentProfile  `xml:"SellerPaymentProfile,omitempty"`
}

type SellerShippingProfile struct {
	ShippingProfileID   int64  `xml:"ShippingProfileID,omitempty"`
	ShippingProfileName string `xml:"ShippingProfileName,omitempty"`
}

type SellerReturnProfile struct {
	ReturnProfileID   int64  `xml:"ReturnProfileID,omitempty"`
	ReturnProfileName string `xml:"ReturnProfileName,omitempty"`
}

type SellerPaymentProfile struct {
	PaymentProfileID   int64  `xml:"PaymentProfileID,omitempty"`
	PaymentProfileName string `xml:"PaymentProfileName,omitempty"`
}

// Regulatory carries the EU compliance block: manufacturer and responsible
// person contacts, hazmat and product-safety labelling, energy labels and
// linked compliance documents.
type Regulatory struct {
	Manufacturer          *ContactDetails        `xml:"Manufacturer,omitempty"`
	ResponsiblePersons    *ResponsiblePersons    `xml:"ResponsiblePersons,omitempty"`
	ProductSafety         *ProductSafety         `xml:"ProductSafety,omitempty"`
	Hazmat                *Hazmat                `xml:"Hazmat,omitempty"`
	EnergyEfficiencyLabel *EnergyEfficiencyLabel `xml:"EnergyEfficiencyLabel,omitempty"`
	RepairScore           float64                `xml:"RepairScore,omitempty"`
	Documents             *RegulatoryDocuments   `xml:"Documents,omitempty"`
}

type ContactDetails struct {
	CompanyName     string `xml:"CompanyName,omitempty"`
	Street1         string `xml:"Street1,omitempty"`
	Street2         string `xml:"Street2,omitempty"`
	CityName        string `xml:"CityName,omitempty"`
	StateOrProvince string `xml:"StateOrProvince,omitempty"`
	PostalCode      string `xml:"PostalCode,omitempty"`
	Country         string `xml:"Country,omitempty"`
	Phone           string `xml:"Phone,omitempty"`
	Email           string `xml:"Email,omitempty"`
	ContactURL      string `xml:"ContactURL,omitempty"`
}

type ResponsiblePersons struct {
	ResponsiblePerson []ResponsiblePerson `xml:"ResponsiblePerson"`
}

type ResponsiblePerson struct {
	ContactDetails
	Types *ResponsiblePersonTypes `xml:"Types,omitempty"`
}

type ResponsiblePersonTypes struct {
	Type []string `xml:"Type"`
}

type ProductSafety struct {
	Component  string                `xml:"Component,omitempty"`
	Pictograms *RegulatoryPictograms `xml:"Pictograms,omitempty"`
	Statements *RegulatoryStatements `xml:"Statements,omitempty"`
}

type Hazmat struct {
	SignalWord string                `xml:"SignalWord,omitempty"`
	Component  string                `xml:"Component,omitempty"`
	Pictograms *RegulatoryPictograms `xml:"Pictograms,omitempty"`
	Statements *RegulatoryStatements `xml:"Statements,omitempty"`
}

// RegulatoryPictograms and RegulatoryStatements are container elements: the
// schema expects the repeatable children wrapped even when there is only one.
type RegulatoryPictograms struct {
	Pictogram []string `xml:"Pictogram"`
}

type RegulatoryStatements struct {
	Statement []string `xml:"Statement"`
}

type EnergyEfficiencyLabel struct {
	ImageDescription        string `xml:"ImageDescription,omitempty"`
	ImageURL                string `xml:"ImageURL,omitempty"`
	ProductInformationSheet string `xml:"ProductInformationsheet,omitempty"`
}

type RegulatoryDocuments struct {
	DocumentID []string `xml:"DocumentID"`
}

type CustomPolicies struct {
	ProductCompliancePolicyID         []int64           `xml:"ProductCompliancePolicyID,omitempty"`
	TakeBackPolicyID                  int64             `xml:"TakeBackPolicyID,omitempty"`
	RegionalProductCompliancePolicies *RegionalPolicies `xml:"RegionalProductCompliancePolicies,omitempty"`
	RegionalTakeBackPolicies          *RegionalPolicies `xml:"RegionalTakeBackPolicies,omitempty"`
}

type RegionalPolicies struct {
	CountryPolicies []CountryPolicies `xml:"CountryPolicies"`
}

type CountryPolicies struct {
	Country  string  `xml:"Country"`
	Policies []int64 `xml:"Policies"`
}

type Storefront struct {
	StoreCategoryID  int64 `xml:"StoreCategoryID,omitempty"`
	StoreCategory2ID int64 `xml:"StoreCategory2ID,omitempty"`
}
