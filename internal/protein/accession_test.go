package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccession(t *testing.T) {
	tests := []struct {
		acc  string
		want AccessionFormat
	}{
		{"P01588", AccessionStandard},
		{"Q62386", AccessionStandard},
		{"Q8JZQ5", AccessionExtended},
		{"O88323", AccessionExtended},
		{"O8A3B1", AccessionExtended},
		{"A12345", AccessionInvalid},
		{"P0158", AccessionInvalid},
		{"P015888", AccessionInvalid},
		{"p01588", AccessionInvalid},
		{"", AccessionInvalid},
		{"CON_P01588", AccessionInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.acc, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAccession(tt.acc))
		})
	}
}

func TestValidAccession(t *testing.T) {
	assert.True(t, ValidAccession("P01588"))
	assert.True(t, ValidAccession("Q8JZQ5"))
	assert.False(t, ValidAccession("XP_1234"))
	assert.False(t, ValidAccession(""))
}
