package components

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// InstrumentName derives the canonical option identifier,
// e.g. BTC-20240321-50000-C. The date is the UTC calendar date of the
// epoch-seconds expiry, the strike is rendered with no trailing decimals,
// and the contract is call-like when its strike is above the reference
// price. Returns "" when any input is empty or unparsable.
func InstrumentName(currency, expiry, strike string, referencePrice decimal.Decimal) string {
	if currency == "" || expiry == "" || strike == "" {
		return ""
	}

	epoch, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil {
		return ""
	}
	strikeValue, err := decimal.NewFromString(strike)
	if err != nil {
		return ""
	}

	kind := "P"
	if strikeValue.GreaterThan(referencePrice) {
		kind = "C"
	}

	date := time.Unix(epoch, 0).UTC().Format("20060102")
	return fmt.Sprintf("%s-%s-%s-%s", currency, date, strikeValue.String(), kind)
}

// FormatExpiryLabel renders an epoch expiry as a short display date ("Mar 21").
func FormatExpiryLabel(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format("Jan 02")
}
