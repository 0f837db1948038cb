package ebay

import "strings"

// ConditionNew is the condition applied when a listing specifies none.
const ConditionNew = 1000

// conditionIDs maps eBay's condition display names to their numeric IDs.
// Lookup is case-insensitive by exact name.
var conditionIDs = map[string]int{
	"new":                      1000,
	"new other":                1500,
	"new with defects":         1750,
	"manufacturer refurbished": 2000,
	"seller refurbished":       2500,
	"used":                     3000,
	"very good":                4000,
	"good":                     5000,
	"acceptable":               6000,
	"for parts or not working": 7000,
}

// ResolveConditionID produces the condition ID for a listing. An explicit
// numeric ID wins over a condition name; an unrecognized name falls back to
// New (1000) rather than failing, since existing callers supply
// loosely-formatted condition values.
func ResolveConditionID(conditionID *int, condition *string) int {
	if conditionID != nil {
		return *conditionID
	}
	if condition != nil {
		if id, ok := conditionIDs[strings.ToLower(strings.TrimSpace(*condition))]; ok {
			return id
		}
	}
	return ConditionNew
}
