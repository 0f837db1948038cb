package ebay

import (
	"sellerhub/internal/models"
)

// Transformer converts canonical listings into the Trading API item shape.
// It is a pure function of its input plus the marketplace tables it holds;
// it never fails and never validates, leaving rejection of bad field values
// to eBay so its error codes reach the caller unchanged.
type Transformer struct {
	marketplaces map[string]MarketplaceConfig
}

func NewTransformer() *Transformer {
	return &Transformer{
		marketplaces: marketplaceConfigs,
	}
}

// Transform builds the Trading API item for a listing on the given
// marketplace. Currency, country, location, condition and shipping/return
// terms are always resolved to usable values; everything else is copied only
// when present.
func (t *Transformer) Transform(listing *models.TradingListingItem, marketplace string) *Item {
	mkt, ok := t.marketplaces[marketplace]
	if !ok {
		mkt = defaultMarketplace
	}

	currency := mkt.Currency
	if listing.Currency != nil && *listing.Currency != "" {
		currency = *listing.Currency
	}
	country := mkt.Country
	if listing.Country != nil && *listing.Country != "" {
		country = NormalizeCountry(*listing.Country)
	}
	// eBay rejects listings without a Location, so fall back to the country.
	location := country
	if listing.Location != nil && *listing.Location != "" {
		location = *listing.Location
	}

	item := &Item{
		SKU:             listing.SKU,
		Title:           listing.Title,
		Description:     &CDATA{Text: listing.Description},
		PrimaryCategory: &CategoryRef{CategoryID: listing.PrimaryCategory.CategoryID},
		StartPrice:      NewMoney(listing.StartPrice, currency),
		Quantity:        listing.Quantity,
		ConditionID:     ResolveConditionID(listing.ConditionID, listing.Condition),
		Country:         country,
		Currency:        currency,
		Location:        location,
	}

	if listing.SubTitle != nil {
		item.SubTitle = *listing.SubTitle
	}
	if listing.SecondaryCategory != nil {
		item.SecondaryCategory = &CategoryRef{CategoryID: listing.SecondaryCategory.CategoryID}
	}
	if listing.ConditionDescription != nil {
		item.ConditionDescription = *listing.ConditionDescription
	}
	if listing.PostalCode != nil {
		item.PostalCode = *listing.PostalCode
	}

	t.applyListingFormat(item, listing, currency)
	item.PictureDetails = buildPictures(listing)
	item.ItemSpecifics = buildSpecifics(listing.ItemSpecifics, marketplace)
	item.ProductListingDetails = buildProductDetails(listing.ProductIdentifiers)
	item.ItemCompatibilityList = buildCompatibilities(listing.Compatibilities)
	t.applyShippingAndReturns(item, listing, mkt, currency)
	item.PaymentMethods = listing.PaymentMethods
	if listing.AutoPay != nil {
		item.AutoPay = *listing.AutoPay
	}
	item.Regulatory = buildRegulatory(listing.Regulatory)
	if listing.EcoParticipationFee != nil {
		item.EcoParticipationFee = NewMoney(*listing.EcoParticipationFee, currency)
	}
	item.CustomPolicies = buildCustomPolicies(listing.CustomPolicies)
	t.applyStoreAndFlags(item, listing)

	return item
}

// applyListingFormat covers pricing and listing-format fields.
func (t *Transformer) applyListingFormat(item *Item, listing *models.TradingListingItem, currency string) {
	if listing.ListingType != nil {
		item.ListingType = *listing.ListingType
	}
	if listing.ListingDuration != nil {
		item.ListingDuration = *listing.ListingDuration
	}
	if listing.PrivateListing != nil {
		item.PrivateListing = *listing.PrivateListing
	}
	if listing.ScheduleTime != nil {
		item.ScheduleTime = *listing.ScheduleTime
	}
	if listing.BuyItNowPrice != nil {
		item.BuyItNowPrice = NewMoney(*listing.BuyItNowPrice, currency)
	}
	if listing.ReservePrice != nil {
		item.ReservePrice = NewMoney(*listing.ReservePrice, currency)
	}
	if listing.LotSize != nil {
		item.LotSize = *listing.LotSize
	}
	if listing.BestOfferEnabled != nil {
		item.BestOfferDetails = &BestOfferDetails{BestOfferEnabled: *listing.BestOfferEnabled}
	}
	if listing.BestOfferAutoAcceptPrice != nil || listing.MinimumBestOfferPrice != nil {
		details := &ListingDetails{}
		if listing.BestOfferAutoAcceptPrice != nil {
			details.BestOfferAutoAcceptPrice = NewMoney(*listing.BestOfferAutoAcceptPrice, currency)
		}
		if listing.MinimumBestOfferPrice != nil {
			details.MinimumBestOfferPrice = NewMoney(*listing.MinimumBestOfferPrice, currency)
		}
		item.ListingDetails = details
	}
	if listing.OriginalRetailPrice != nil {
		item.DiscountPriceInfo = &DiscountPriceInfo{
			OriginalRetailPrice: NewMoney(*listing.OriginalRetailPrice, currency),
		}
	}
	if listing.VATPercent != nil {
		item.VATDetails = &VATDetails{VATPercent: *listing.VATPercent}
	}
}

func buildPictures(listing *models.TradingListingItem) *PictureDetails {
	if len(listing.PictureURLs) == 0 && listing.GalleryType == nil {
		return nil
	}
	details := &PictureDetails{PictureURL: listing.PictureURLs}
	if listing.GalleryType != nil {
		details.GalleryType = *listing.GalleryType
	}
	return details
}

func buildSpecifics(specifics []models.ItemSpecific, marketplace string) *NameValueListContainer {
	if len(specifics) == 0 {
		return nil
	}
	container := &NameValueListContainer{}
	for _, spec := range specifics {
		container.NameValueList = append(container.NameValueList, NameValueList{
			Name:  TranslateSpecificName(spec.Name, marketplace),
			Value: spec.Value,
		})
	}
	return container
}

func buildProductDetails(ids *models.ProductIdentifiers) *ProductListingDetails {
	if ids == nil {
		return nil
	}
	details := &ProductListingDetails{}
	if ids.UPC != nil {
		details.UPC = *ids.UPC
	}
	if ids.EAN != nil {
		details.EAN = *ids.EAN
	}
	if ids.ISBN != nil {
		details.ISBN = *ids.ISBN
	}
	if ids.Brand != nil && ids.MPN != nil {
		details.BrandMPN = &BrandMPN{Brand: *ids.Brand, MPN: *ids.MPN}
	}
	if ids.IncludeEbayProductDetails != nil {
		details.IncludeeBayProductDetails = *ids.IncludeEbayProductDetails
	}
	return details
}

func buildCompatibilities(compatibilities []models.Compatibility) *ItemCompatibilityList {
	if len(compatibilities) == 0 {
		return nil
	}
	list := &ItemCompatibilityList{}
	for _, compat := range compatibilities {
		entry := ItemCompatibility{}
		for _, nv := range compat.NameValues {
			entry.NameValueList = append(entry.NameValueList, NameValueList{
				Name:  nv.Name,
				Value: []string{nv.Value},
			})
		}
		if compat.Notes != nil {
			entry.CompatibilityNotes = *compat.Notes
		}
		list.Compatibility = append(list.Compatibility, entry)
	}
	return list
}

// applyShippingAndReturns guarantees the outgoing item always carries usable
// shipping and return terms from some source. Business policies suppress the
// inline blocks; explicit details pass through; with neither, a minimal
// default is synthesized because AddFixedPriceItem fails without them.
func (t *Transformer) applyShippingAndReturns(item *Item, listing *models.TradingListingItem, mkt MarketplaceConfig, currency string) {
	if listing.DispatchTimeMax != nil {
		item.DispatchTimeMax = *listing.DispatchTimeMax
	}
	item.ShipToLocations = listing.ShipToLocations

	hasProfiles := listing.SellerProfiles != nil
	if hasProfiles {
		item.SellerProfiles = buildSellerProfiles(listing.SellerProfiles)
	}

	switch {
	case hasExplicitShipping(listing.ShippingDetails):
		item.ShippingDetails = buildShippingDetails(listing.ShippingDetails, currency)
		// International-only details still need a domestic service.
		if len(item.ShippingDetails.ShippingServiceOptions) == 0 {
			item.ShippingDetails.ShippingServiceOptions = defaultServiceOptions(mkt, currency)
		}
	case hasProfiles:
		// Let the shipping business policy apply.
	default:
		item.ShippingDetails = &ShippingDetails{
			ShippingType:           "Flat",
			ShippingServiceOptions: defaultServiceOptions(mkt, currency),
		}
	}

	switch {
	case listing.ReturnPolicy != nil:
		item.ReturnPolicy = buildReturnPolicy(listing.ReturnPolicy)
	case hasProfiles:
		// Let the return business policy apply.
	default:
		item.ReturnPolicy = &ReturnPolicy{
			ReturnsAcceptedOption:    "ReturnsAccepted",
			RefundOption:             "MoneyBack",
			ReturnsWithinOption:      "Days_30",
			ShippingCostPaidByOption: "Buyer",
		}
	}
}

func hasExplicitShipping(details *models.ShippingDetails) bool {
	if details == nil {
		return false
	}
	return len(details.ShippingServiceOptions) > 0 ||
		len(details.InternationalShippingServiceOptions) > 0
}

func defaultServiceOptions(mkt MarketplaceConfig, currency string) []ShippingServiceOption {
	return []ShippingServiceOption{{
		ShippingServicePriority: 1,
		ShippingService:         mkt.ShippingService,
		ShippingServiceCost:     NewMoney(0, currency),
	}}
}

func buildShippingDetails(details *models.ShippingDetails, currency string) *ShippingDetails {
	out := &ShippingDetails{
		ShippingType:          "Flat",
		ExcludeShipToLocation: details.ExcludeShipToLocations,
	}
	if details.ShippingType != nil {
		out.ShippingType = *details.ShippingType
	}
	if details.GlobalShipping != nil {
		out.GlobalShipping = *details.GlobalShipping
	}
	out.ShippingServiceOptions = buildServiceOptions(details.ShippingServiceOptions, currency)
	out.InternationalShippingServiceOption = buildServiceOptions(details.InternationalShippingServiceOptions, currency)
	return out
}

func buildServiceOptions(options []models.ShippingServiceOption, currency string) []ShippingServiceOption {
	if len(options) == 0 {
		return nil
	}
	out := make([]ShippingServiceOption, len(options))
	for i, opt := range options {
		mapped := ShippingServiceOption{
			ShippingServicePriority: i + 1,
			ShippingService:         opt.ShippingService,
			ShipToLocation:          opt.ShipToLocations,
		}
		if opt.Priority != nil {
			mapped.ShippingServicePriority = *opt.Priority
		}
		if opt.Cost != nil {
			mapped.ShippingServiceCost = NewMoney(*opt.Cost, currency)
		}
		if opt.AdditionalCost != nil {
			mapped.ShippingServiceAdditionalCost = NewMoney(*opt.AdditionalCost, currency)
		}
		if opt.FreeShipping != nil {
			mapped.FreeShipping = *opt.FreeShipping
		}
		out[i] = mapped
	}
	return out
}

func buildReturnPolicy(policy *models.ReturnPolicy) *ReturnPolicy {
	out := &ReturnPolicy{}
	if policy.ReturnsAccepted != nil {
		out.ReturnsAcceptedOption = *policy.ReturnsAccepted
	}
	if policy.Refund != nil {
		out.RefundOption = *policy.Refund
	}
	if policy.ReturnsWithin != nil {
		out.ReturnsWithinOption = *policy.ReturnsWithin
	}
	if policy.ShippingCostPaidBy != nil {
		out.ShippingCostPaidByOption = *policy.ShippingCostPaidBy
	}
	if policy.InternationalReturnsAccepted != nil {
		out.InternationalReturnsAcceptedOption = *policy.InternationalReturnsAccepted
	}
	if policy.Description != nil {
		out.Description = *policy.Description
	}
	return out
}

func buildSellerProfiles(profiles *models.SellerProfiles) *SellerProfiles {
	out := &SellerProfiles{}
	if p := profiles.SellerShippingProfile; p != nil {
		out.SellerShippingProfile = &SellerShippingProfile{
			ShippingProfileID:   p.ProfileID,
			ShippingProfileName: p.ProfileName,
		}
	}
	if p := profiles.SellerReturnProfile; p != nil {
		out.SellerReturnProfile = &SellerReturnProfile{
			ReturnProfileID:   p.ProfileID,
			ReturnProfileName: p.ProfileName,
		}
	}
	if p := profiles.SellerPaymentProfile; p != nil {
		out.SellerPaymentProfile = &SellerPaymentProfile{
			PaymentProfileID:   p.ProfileID,
			PaymentProfileName: p.ProfileName,
		}
	}
	return out
}

func buildRegulatory(reg *models.Regulatory) *Regulatory {
	if reg == nil {
		return nil
	}
	out := &Regulatory{}
	if reg.Manufacturer != nil {
		out.Manufacturer = buildContact(reg.Manufacturer)
	}
	if len(reg.ResponsiblePersons) > 0 {
		persons := &ResponsiblePersons{}
		for _, contact := range reg.ResponsiblePersons {
			person := ResponsiblePerson{ContactDetails: *buildContact(&contact)}
			if len(contact.Types) > 0 {
				person.Types = &ResponsiblePersonTypes{Type: contact.Types}
			}
			persons.ResponsiblePerson = append(persons.ResponsiblePerson, person)
		}
		out.ResponsiblePersons = persons
	}
	if reg.ProductSafety != nil {
		safety := &ProductSafety{}
		if reg.ProductSafety.Component != nil {
			safety.Component = *reg.ProductSafety.Component
		}
		if len(reg.ProductSafety.Pictograms) > 0 {
			safety.Pictograms = &RegulatoryPictograms{Pictogram: reg.ProductSafety.Pictograms}
		}
		if len(reg.ProductSafety.Statements) > 0 {
			safety.Statements = &RegulatoryStatements{Statement: reg.ProductSafety.Statements}
		}
		out.ProductSafety = safety
	}
	if reg.Hazmat != nil {
		hazmat := &Hazmat{}
		if reg.Hazmat.SignalWord != nil {
			hazmat.SignalWord = *reg.Hazmat.SignalWord
		}
		if reg.Hazmat.Component != nil {
			hazmat.Component = *reg.Hazmat.Component
		}
		if len(reg.Hazmat.Pictograms) > 0 {
			hazmat.Pictograms = &RegulatoryPictograms{Pictogram: reg.Hazmat.Pictograms}
		}
		if len(reg.Hazmat.Statements) > 0 {
			hazmat.Statements = &RegulatoryStatements{Statement: reg.Hazmat.Statements}
		}
		out.Hazmat = hazmat
	}
	if reg.EnergyEfficiencyLabel != nil {
		label := &EnergyEfficiencyLabel{}
		if reg.EnergyEfficiencyLabel.ImageDescription != nil {
			label.ImageDescription = *reg.EnergyEfficiencyLabel.ImageDescription
		}
		if reg.EnergyEfficiencyLabel.ImageURL != nil {
			label.ImageURL = *reg.EnergyEfficiencyLabel.ImageURL
		}
		if reg.EnergyEfficiencyLabel.ProductInformationSheet != nil {
			label.ProductInformationSheet = *reg.EnergyEfficiencyLabel.ProductInformationSheet
		}
		out.EnergyEfficiencyLabel = label
	}
	if reg.RepairScore != nil {
		out.RepairScore = *reg.RepairScore
	}
	if len(reg.DocumentIDs) > 0 {
		out.Documents = &RegulatoryDocuments{DocumentID: reg.DocumentIDs}
	}
	return out
}

// buildContact maps a regulatory contact, normalizing its country the same
// way as the top-level location.
func buildContact(contact *models.RegulatoryContact) *ContactDetails {
	out := &ContactDetails{}
	if contact.CompanyName != nil {
		out.CompanyName = *contact.CompanyName
	}
	if contact.Street1 != nil {
		out.Street1 = *contact.Street1
	}
	if contact.Street2 != nil {
		out.Street2 = *contact.Street2
	}
	if contact.City != nil {
		out.CityName = *contact.City
	}
	if contact.StateOrProvince != nil {
		out.StateOrProvince = *contact.StateOrProvince
	}
	if contact.PostalCode != nil {
		out.PostalCode = *contact.PostalCode
	}
	if contact.Country != nil {
		out.Country = NormalizeCountry(*contact.Country)
	}
	if contact.Phone != nil {
		out.Phone = *contact.Phone
	}
	if contact.Email != nil {
		out.Email = *contact.Email
	}
	if contact.ContactURL != nil {
		out.ContactURL = *contact.ContactURL
	}
	return out
}

func buildCustomPolicies(policies *models.CustomPolicies) *CustomPolicies {
	if policies == nil {
		return nil
	}
	out := &CustomPolicies{
		ProductCompliancePolicyID: policies.ProductCompliancePolicyIDs,
	}
	if policies.TakeBackPolicyID != nil {
		out.TakeBackPolicyID = *policies.TakeBackPolicyID
	}
	if len(policies.RegionalProductCompliancePolicies) > 0 {
		out.RegionalProductCompliancePolicies = buildRegionalPolicies(policies.RegionalProductCompliancePolicies)
	}
	if len(policies.RegionalTakeBackPolicies) > 0 {
		out.RegionalTakeBackPolicies = buildRegionalPolicies(policies.RegionalTakeBackPolicies)
	}
	return out
}

func buildRegionalPolicies(policies []models.RegionalPolicy) *RegionalPolicies {
	out := &RegionalPolicies{}
	for _, policy := range policies {
		out.CountryPolicies = append(out.CountryPolicies, CountryPolicies{
			Country:  NormalizeCountry(policy.Country),
			Policies: policy.PolicyIDs,
		})
	}
	return out
}

func (t *Transformer) applyStoreAndFlags(item *Item, listing *models.TradingListingItem) {
	if listing.StoreCategoryID != nil || listing.StoreCategory2ID != nil {
		store := &Storefront{}
		if listing.StoreCategoryID != nil {
			store.StoreCategoryID = *listing.StoreCategoryID
		}
		if listing.StoreCategory2ID != nil {
			store.StoreCategory2ID = *listing.StoreCategory2ID
		}
		item.Storefront = store
	}
	if listing.OutOfStockControl != nil {
		item.OutOfStockControl = *listing.OutOfStockControl
	}
	if listing.DisableBuyerRequirements != nil {
		item.DisableBuyerRequirements = *listing.DisableBuyerRequirements
	}
}
