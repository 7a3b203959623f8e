package components

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/nickbar86/derive/models"
)

// BuildCatalog indexes a flat contract list into queryable form: a by-name
// map, the sorted distinct expiries, and the sorted distinct strikes per
// expiry. The result does not depend on input order, except that duplicate
// instrument names resolve last-write-wins in ByName.
//
// Dedup goes through maps so large catalogs stay O(n log n).
func BuildCatalog(contracts []models.Contract) models.Catalog {
	byName := make(map[string]models.Contract, len(contracts))
	expirySet := make(map[int64]struct{})
	strikeSets := make(map[int64]map[string]decimal.Decimal)

	for _, c := range contracts {
		byName[c.InstrumentName] = c

		expiry := c.OptionDetails.Expiry
		expirySet[expiry] = struct{}{}

		set, ok := strikeSets[expiry]
		if !ok {
			set = make(map[string]decimal.Decimal)
			strikeSets[expiry] = set
		}
		// canonical decimal string, so "50000.000000000000000000" and
		// "50000" collapse to one strike
		set[c.OptionDetails.Strike.String()] = c.OptionDetails.Strike
	}

	expiries := make([]int64, 0, len(expirySet))
	for expiry := range expirySet {
		expiries = append(expiries, expiry)
	}
	sort.Slice(expiries, func(i, j int) bool { return expiries[i] < expiries[j] })

	strikesByExpiry := make(map[string][]string, len(strikeSets))
	for expiry, set := range strikeSets {
		values := make([]decimal.Decimal, 0, len(set))
		for _, d := range set {
			values = append(values, d)
		}
		sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })

		strikes := make([]string, len(values))
		for i, d := range values {
			strikes[i] = d.String()
		}
		strikesByExpiry[strconv.FormatInt(expiry, 10)] = strikes
	}

	return models.Catalog{
		ByName:          byName,
		Expiries:        expiries,
		StrikesByExpiry: strikesByExpiry,
	}
}
