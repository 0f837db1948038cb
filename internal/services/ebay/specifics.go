package ebay

// germanSpecificNames maps the canonical English item-specific names to the
// localized names eBay Germany expects. Values are never translated, only
// the specific's name.
var germanSpecificNames = map[string]string{
	"Brand":                         "Marke",
	"Model":                         "Modell",
	"Storage Capacity":              "Speicherkapazität",
	"Color":                         "Farbe",
	"Colour":                        "Farbe",
	"Compatible Brand":              "Kompatible Marke",
	"Compatible Model":              "Kompatibles Modell",
	"Type":                          "Produktart",
	"Material":                      "Material",
	"Size":                          "Größe",
	"Manufacturer":                  "Hersteller",
	"MPN":                           "Herstellernummer",
	"Condition":                     "Zustand",
	"Style":                         "Stil",
	"Theme":                         "Thema",
	"Features":                      "Besonderheiten",
	"Country/Region of Manufacture": "Herstellungsland und -region",
}

// localizedSpecificNames holds the per-marketplace translation tables.
// Marketplaces without an entry pass specific names through unchanged.
var localizedSpecificNames = map[string]map[string]string{
	"EBAY_DE": germanSpecificNames,
}

// TranslateSpecificName substitutes a localized item-specific name for the
// given marketplace when the table has one, and returns the name unchanged
// otherwise.
func TranslateSpecificName(name, marketplace string) string {
	table, ok := localizedSpecificNames[marketplace]
	if !ok {
		return name
	}
	if localized, ok := table[name]; ok {
		return localized
	}
	return name
}
