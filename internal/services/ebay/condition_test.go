package ebay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestResolveConditionID(t *testing.T) {
	tests := []struct {
		name        string
		conditionID *int
		condition   *string
		want        int
	}{
		{"neither defaults to New", nil, nil, 1000},
		{"name lookup", nil, strPtr("Used"), 3000},
		{"lowercase name", nil, strPtr("used"), 3000},
		{"uppercase name", nil, strPtr("USED"), 3000},
		{"numeric wins over name", intPtr(3000), strPtr("New"), 3000},
		{"unrecognized name falls back", nil, strPtr("Slightly Scuffed"), 1000},
		{"seller refurbished", nil, strPtr("Seller refurbished"), 2500},
		{"for parts", nil, strPtr("For parts or not working"), 7000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveConditionID(tt.conditionID, tt.condition))
		})
	}
}
