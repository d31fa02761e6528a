package receipt

import (
	"strconv"
	"strings"
)

// Scoring sub-rules. Each is independent; the score is their sum.
const (
	roundDollarPoints   = 50
	quarterPoints       = 25
	pointsPerItemPair   = 5
	oddDayPoints        = 6
	afternoonPoints     = 10
	afternoonWindowFrom = 14
	afternoonWindowTo   = 16
)

// Points computes the deterministic score of a receipt. The receipt is
// expected to have passed Validate; money fields that fail to parse simply
// contribute nothing. Pure and side-effect free — callers recompute per
// query instead of caching.
func Points(rcpt Receipt) int {
	points := alphanumericCount(rcpt.Retailer)

	if cents, ok := parseCents(rcpt.Total); ok {
		if cents%100 == 0 {
			points += roundDollarPoints
		}
		if cents%25 == 0 {
			points += quarterPoints
		}
	}

	points += len(rcpt.Items) / 2 * pointsPerItemPair

	for _, item := range rcpt.Items {
		points += descriptionPoints(item)
	}

	if day, ok := dayOfMonth(rcpt.PurchaseDate); ok && day%2 == 1 {
		points += oddDayPoints
	}

	if hour, ok := hourOfDay(rcpt.PurchaseTime); ok &&
		hour >= afternoonWindowFrom && hour <= afternoonWindowTo {
		points += afternoonPoints
	}

	return points
}

// descriptionPoints awards ceil(price * 0.2) when the trimmed description
// length is a multiple of three. Computed in exact integer cents:
// price*0.2 dollars is cents/500, rounded up.
func descriptionPoints(item Item) int {
	trimmed := strings.TrimSpace(item.ShortDescription)
	if len(trimmed)%3 != 0 {
		return 0
	}
	cents, ok := parseCents(item.Price)
	if !ok {
		return 0
	}
	return (cents + 499) / 500
}

func alphanumericCount(s string) int {
	count := 0
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			count++
		}
	}
	return count
}

// parseCents converts a "dollars.cents" string to total cents. The fraction
// must be exactly two digits, matching the validated wire format.
func parseCents(amount string) (int, bool) {
	dot := strings.IndexByte(amount, '.')
	if dot < 1 || len(amount)-dot-1 != 2 {
		return 0, false
	}
	dollars, err := strconv.Atoi(amount[:dot])
	if err != nil || dollars < 0 {
		return 0, false
	}
	cents, err := strconv.Atoi(amount[dot+1:])
	if err != nil || cents < 0 {
		return 0, false
	}
	return dollars*100 + cents, true
}

func dayOfMonth(date string) (int, bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}
	return day, true
}

func hourOfDay(clock string) (int, bool) {
	colon := strings.IndexByte(clock, ':')
	if colon < 1 {
		return 0, false
	}
	hour, err := strconv.Atoi(clock[:colon])
	if err != nil {
		return 0, false
	}
	return hour, true
}
