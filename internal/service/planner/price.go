package planner

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// NormalizePrice turns a formatted amount such as "$1,250.00" into a plain
// number by dropping every character other than digits, '.' and '-'.
// It reports false when nothing parsable remains or the amount is negative
// or too large to store; the item is then stored without a price.
func NormalizePrice(raw string) (*float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return nil, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 || !domain.AmountFits(v) {
		return nil, false
	}
	return &v, true
}
