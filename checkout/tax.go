package checkout

import "strings"

// Tax rates per product tier.
const (
	foodTaxRate        = 0.05
	electronicsTaxRate = 0.10
	digitalTaxRate     = 0.12
	generalTaxRate     = 0.08
)

var (
	foodKeywords        = []string{"cheese", "biscuit", "milk", "food"}
	electronicsKeywords = []string{"tv", "laptop", "monitor", "server", "equipment"}
	digitalKeywords     = []string{"digital", "download", "scratch card", "mobile"}
)

// taxRateFor maps a product name to its tax rate by case-insensitive keyword
// match. Tiers are tested in a fixed order and the first match wins.
func taxRateFor(productName string) float64 {
	name := strings.ToLower(productName)

	if containsAny(name, foodKeywords) {
		return foodTaxRate
	}
	if containsAny(name, electronicsKeywords) {
		return electronicsTaxRate
	}
	if containsAny(name, digitalKeywords) {
		return digitalTaxRate
	}
	return generalTaxRate
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
