package receipt

import "regexp"

var (
	datePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[1-2]\d|3[0-1])$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
	// The total pattern is deliberately unanchored: any string containing a
	// two-decimal amount is admitted.
	totalPattern = regexp.MustCompile(`\d+\.\d{2}`)
	descPattern  = regexp.MustCompile(`^[\w\s\-]+$`)
	pricePattern = regexp.MustCompile(`^\d+\.\d{2}$`)
)

// Validate reports whether the receipt is admissible. Checks run in a fixed
// order and short-circuit on the first failure. The retailer carries no
// content rule; its type is guaranteed by JSON decoding. Any invalid item
// invalidates the whole receipt. Pure and side-effect free.
func Validate(rcpt Receipt) bool {
	if !datePattern.MatchString(rcpt.PurchaseDate) {
		return false
	}
	if !timePattern.MatchString(rcpt.PurchaseTime) {
		return false
	}
	if len(rcpt.Items) < 1 {
		return false
	}
	if !totalPattern.MatchString(rcpt.Total) {
		return false
	}
	for _, item := range rcpt.Items {
		if !descPattern.MatchString(item.ShortDescription) {
			return false
		}
		if !pricePattern.MatchString(item.Price) {
			return false
		}
	}
	return true
}
