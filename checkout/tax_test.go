package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxRateFor(t *testing.T) {
	tests := []struct {
		product string
		want    float64
	}{
		{"Cheese", 0.05},
		{"Biscuits", 0.05},
		{"Fresh Milk", 0.05},
		{"TV", 0.10},
		{"Gaming Laptop", 0.10},
		{"Mobile scratch card", 0.12},
		{"Digital Gift Card", 0.12},
		{"Office Chair", 0.08},
		{"", 0.08},
	}

	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			assert.InDelta(t, tt.want, taxRateFor(tt.product), 1e-9)
		})
	}
}

// The food tier is tested before the digital tier, so a name matching both
// gets the food rate.
func TestTaxTierOrder(t *testing.T) {
	assert.InDelta(t, 0.05, taxRateFor("Cheese download"), 1e-9)
	assert.InDelta(t, 0.10, taxRateFor("TV download"), 1e-9)
}

func TestTaxRateIsCaseInsensitive(t *testing.T) {
	assert.InDelta(t, 0.05, taxRateFor("CHEESE"), 1e-9)
	assert.InDelta(t, 0.10, taxRateFor("tv"), 1e-9)
}
