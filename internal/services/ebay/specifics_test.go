package ebay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateSpecificName(t *testing.T) {
	tests := []struct {
		name        string
		marketplace string
		want        string
	}{
		{"Brand", "EBAY_DE", "Marke"},
		{"Colour", "EBAY_DE", "Farbe"},
		{"Size", "EBAY_DE", "Größe"},
		{"Country/Region of Manufacture", "EBAY_DE", "Herstellungsland und -region"},
		{"Brand", "EBAY_US", "Brand"},
		{"Brand", "EBAY_FR", "Brand"},
		{"Wingspan", "EBAY_DE", "Wingspan"}, // not in the table
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TranslateSpecificName(tt.name, tt.marketplace),
			"%s on %s", tt.name, tt.marketplace)
	}
}
