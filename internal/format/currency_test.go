package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[int64]string{
		0:         "$0.00",
		5:         "$0.05",
		5000:      "$50.00",
		3000:      "$30.00",
		123456:    "$1,234.56",
		100000000: "$1,000,000.00",
		-100:      "-$1.00",
		-123456:   "-$1,234.56",
	}
	for cents, want := range cases {
		assert.Equal(t, want, FormatCurrency(cents), "cents=%d", cents)
	}
}

func TestFormatCurrency_BeyondFloatPrecision(t *testing.T) {
	assert.Equal(t, "$90,071,992,547,409.93", FormatCurrency(9007199254740993))
	assert.Equal(t, "$92,233,720,368,547,758.07", FormatCurrency(math.MaxInt64))
	assert.Equal(t, "-$92,233,720,368,547,758.08", FormatCurrency(math.MinInt64))
}

func TestCentsToUnits(t *testing.T) {
	assert.Equal(t, 1234.56, CentsToUnits(123456))
	assert.Equal(t, 0.0, CentsToUnits(0))
	assert.Equal(t, 0.01, CentsToUnits(1))
}
