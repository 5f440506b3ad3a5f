package store

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// parseDecimal converts a decimal column back to its value. Columns are
// only ever written from decimal.String, so a parse failure means the
// database was edited out of band.
func parseDecimal(column, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("corrupt %s column %q: %w", column, s, err)
	}
	return d, nil
}
