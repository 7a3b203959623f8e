package components

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nickbar86/derive/models"
)

// NearestExpiry returns the first expiry at or after now from an ascending
// expiry list. When every expiry has already passed it falls back to the
// earliest one, so stale data still yields a usable default. The second
// return is false only for an empty list.
func NearestExpiry(expiries []int64, now time.Time) (int64, bool) {
	if len(expiries) == 0 {
		return 0, false
	}
	ts := now.Unix()
	i := sort.Search(len(expiries), func(i int) bool { return expiries[i] >= ts })
	if i == len(expiries) {
		return expiries[0], true
	}
	return expiries[i], true
}

// ClosestStrike picks the strike with the smallest absolute distance to the
// target from an ascending list of numeric strike strings. Exact distance
// ties resolve to the lower strike. Empty list yields "".
func ClosestStrike(strikes []string, target decimal.Decimal) string {
	if len(strikes) == 0 {
		return ""
	}

	values := make([]decimal.Decimal, len(strikes))
	for i, s := range strikes {
		values[i], _ = decimal.NewFromString(s)
	}

	i := sort.Search(len(values), func(i int) bool { return !values[i].LessThan(target) })
	if i == len(values) {
		return strikes[len(strikes)-1]
	}
	if i == 0 {
		return strikes[0]
	}

	below := target.Sub(values[i-1])
	above := values[i].Sub(target)
	if below.LessThanOrEqual(above) {
		return strikes[i-1]
	}
	return strikes[i]
}

// DefaultSelection seeds the (expiry, strike) pair for a freshly indexed
// catalog: nearest future expiry, then the strike closest to the reference
// price within that expiry.
func DefaultSelection(catalog models.Catalog, referencePrice decimal.Decimal, now time.Time) (expiry, strike string) {
	e, ok := NearestExpiry(catalog.Expiries, now)
	if !ok {
		return "", ""
	}
	expiry = strconv.FormatInt(e, 10)
	strike = ClosestStrike(catalog.StrikesByExpiry[expiry], referencePrice)
	return expiry, strike
}
