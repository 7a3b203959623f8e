package components

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoffCurveCall(t *testing.T) {
	spot := decimal.NewFromInt(50000)
	strike := decimal.NewFromInt(55000)

	points := PayoffCurve(spot, strike, true)

	require.Len(t, points, 50)
	assert.True(t, points[0].Price.Equal(decimal.NewFromInt(25000)), "curve starts at spot-50%%: %s", points[0].Price)
	assert.True(t, points[49].Price.Equal(decimal.NewFromInt(75000)), "curve ends at spot+50%%: %s", points[49].Price)

	// worthless below the strike, intrinsic above it
	for _, p := range points {
		if p.Price.LessThanOrEqual(strike) {
			assert.True(t, p.Payoff.IsZero(), "payoff at %s should be zero", p.Price)
		} else {
			assert.True(t, p.Payoff.Equal(p.Price.Sub(strike)), "payoff at %s", p.Price)
		}
	}
}

func TestPayoffCurvePut(t *testing.T) {
	spot := decimal.NewFromInt(50000)
	strike := decimal.NewFromInt(45000)

	points := PayoffCurve(spot, strike, false)

	require.Len(t, points, 50)
	for _, p := range points {
		if p.Price.GreaterThanOrEqual(strike) {
			assert.True(t, p.Payoff.IsZero(), "payoff at %s should be zero", p.Price)
		} else {
			assert.True(t, p.Payoff.Equal(strike.Sub(p.Price)), "payoff at %s", p.Price)
		}
	}
}

func TestPayoffCurveNonPositiveSpot(t *testing.T) {
	assert.Nil(t, PayoffCurve(decimal.Zero, decimal.NewFromInt(45000), true))
}
