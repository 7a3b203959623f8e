package components

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickbar86/derive/models"
)

func contract(name string, expiry int64, strike string) models.Contract {
	return models.Contract{
		InstrumentName: name,
		IsActive:       true,
		OptionDetails: models.OptionDetails{
			Expiry: expiry,
			Strike: decimal.RequireFromString(strike),
		},
	}
}

func TestBuildCatalogEmptyInput(t *testing.T) {
	catalog := BuildCatalog(nil)

	assert.Empty(t, catalog.ByName)
	assert.Empty(t, catalog.Expiries)
	assert.Empty(t, catalog.StrikesByExpiry)
}

func TestBuildCatalogIndexesAndSorts(t *testing.T) {
	contracts := []models.Contract{
		contract("BTC-20240322-55000-C", 1711065600, "55000"),
		contract("BTC-20240321-50000-C", 1710979200, "50000"),
		contract("BTC-20240321-45000-P", 1710979200, "45000"),
		contract("BTC-20240322-9000-P", 1711065600, "9000"),
	}

	catalog := BuildCatalog(contracts)

	assert.Len(t, catalog.ByName, 4)
	assert.Equal(t, []int64{1710979200, 1711065600}, catalog.Expiries)
	assert.Equal(t, []string{"45000", "50000"}, catalog.StrikesByExpiry["1710979200"])
	// numeric sort, not lexicographic: 9000 before 55000
	assert.Equal(t, []string{"9000", "55000"}, catalog.StrikesByExpiry["1711065600"])
}

func TestBuildCatalogStrikesByExpiryKeysMatchExpiries(t *testing.T) {
	contracts := []models.Contract{
		contract("BTC-20240321-50000-C", 1710979200, "50000"),
		contract("BTC-20240322-50000-C", 1711065600, "50000"),
		contract("BTC-20240329-50000-C", 1711670400, "50000"),
	}

	catalog := BuildCatalog(contracts)

	require.Len(t, catalog.StrikesByExpiry, len(catalog.Expiries))
	for _, e := range catalog.Expiries {
		assert.Contains(t, catalog.StrikesByExpiry, strconv.FormatInt(e, 10))
	}
}

func TestBuildCatalogDeduplicatesStrikes(t *testing.T) {
	// 18-decimal-place strikes collapse with their canonical form
	contracts := []models.Contract{
		contract("BTC-20240321-50000-C", 1710979200, "50000.000000000000000000"),
		contract("BTC-20240321-50000-P", 1710979200, "50000"),
		contract("BTC-20240321-45000-C", 1710979200, "45000"),
	}

	catalog := BuildCatalog(contracts)

	assert.Equal(t, []string{"45000", "50000"}, catalog.StrikesByExpiry["1710979200"])
}

func TestBuildCatalogDuplicateNamesLastWins(t *testing.T) {
	first := contract("BTC-20240321-50000-C", 1710979200, "50000")
	second := contract("BTC-20240321-50000-C", 1710979200, "50000")
	second.IsActive = false

	catalog := BuildCatalog([]models.Contract{first, second})

	require.Len(t, catalog.ByName, 1)
	assert.False(t, catalog.ByName["BTC-20240321-50000-C"].IsActive)
}

func TestBuildCatalogPermutationInvariant(t *testing.T) {
	contracts := []models.Contract{
		contract("BTC-20240321-45000-P", 1710979200, "45000"),
		contract("BTC-20240321-50000-C", 1710979200, "50000"),
		contract("BTC-20240322-55000-C", 1711065600, "55000"),
		contract("BTC-20240322-9000-P", 1711065600, "9000"),
	}
	reversed := make([]models.Contract, len(contracts))
	for i, c := range contracts {
		reversed[len(contracts)-1-i] = c
	}

	assert.Equal(t, BuildCatalog(contracts), BuildCatalog(reversed))
}

func TestBuildCatalogIdempotent(t *testing.T) {
	contracts := []models.Contract{
		contract("BTC-20240321-45000-P", 1710979200, "45000"),
		contract("BTC-20240321-50000-C", 1710979200, "50000"),
	}

	assert.Equal(t, BuildCatalog(contracts), BuildCatalog(contracts))
}
