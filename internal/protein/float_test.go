package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		missing bool
	}{
		{"plain number", "42.5", 42.5, false},
		{"integer", "1000", 1000, false},
		{"thousands separator", "1,234,567.8", 1234567.8, false},
		{"leading whitespace", "  3.14 ", 3.14, false},
		{"scientific notation", "2.5e6", 2.5e6, false},
		{"zero", "0", 0, false},
		{"empty cell", "", 0, true},
		{"dash placeholder", "-", 0, true},
		{"padded dash", " - ", 0, true},
		{"division error code", "#DIV/0!", 0, true},
		{"nan literal", "NaN", 0, true},
		{"garbage", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFloat(tt.input)
			if tt.missing {
				assert.True(t, got.IsMissing())
			} else {
				assert.False(t, got.IsMissing())
				assert.InDelta(t, tt.want, float64(got), 1e-9)
			}
		})
	}
}

func TestFloat_Present(t *testing.T) {
	// Zero intensity means the protein was not detected, so it does not
	// count as present even though the cell held a value.
	assert.False(t, Float(0).Present())
	assert.False(t, Missing().Present())
	assert.True(t, Float(0.001).Present())
	assert.True(t, Float(5e6).Present())
}

func TestFloat_String(t *testing.T) {
	assert.Equal(t, "", Missing().String())
	assert.Equal(t, "2.5", Float(2.5).String())
	assert.Equal(t, "0", Float(0).String())
}

func TestFloat_CSVRoundTrip(t *testing.T) {
	var f Float
	assert.NoError(t, f.UnmarshalCSV("1,500"))
	s, err := f.MarshalCSV()
	assert.NoError(t, err)
	assert.Equal(t, "1500", s)

	assert.NoError(t, f.UnmarshalCSV("#DIV/0!"))
	s, err = f.MarshalCSV()
	assert.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestMean(t *testing.T) {
	// Zeros and missing values are excluded from the average.
	assert.InDelta(t, 11, float64(Mean(10, 12, 0)), 1e-9)
	assert.InDelta(t, 9, float64(Mean(0, 9)), 1e-9)
	assert.InDelta(t, 7.5, float64(Mean(5, 10, Missing())), 1e-9)
	assert.True(t, Mean(0, 0).IsMissing())
	assert.True(t, Mean(Missing(), Missing()).IsMissing())
	assert.True(t, Mean().IsMissing())
}
