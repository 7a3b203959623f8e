package components

import "github.com/shopspring/decimal"

const payoffPoints = 50

type PayoffPoint struct {
	Price  decimal.Decimal `json:"price"`
	Payoff decimal.Decimal `json:"payoff"`
}

// PayoffCurve samples the option payoff at expiry across spot ± 50%, at 50
// evenly spaced prices. Calls pay max(0, price-strike), puts pay
// max(0, strike-price). Nil when the spot price is not positive.
func PayoffCurve(spot, strike decimal.Decimal, isCall bool) []PayoffPoint {
	if !spot.IsPositive() {
		return nil
	}

	half := spot.Div(decimal.NewFromInt(2))
	min := spot.Sub(half)
	span := half.Mul(decimal.NewFromInt(2))
	intervals := decimal.NewFromInt(payoffPoints - 1)

	points := make([]PayoffPoint, payoffPoints)
	for i := range points {
		price := min.Add(span.Mul(decimal.NewFromInt(int64(i))).Div(intervals))

		var payoff decimal.Decimal
		if isCall {
			payoff = price.Sub(strike)
		} else {
			payoff = strike.Sub(price)
		}
		if payoff.IsNegative() {
			payoff = decimal.Zero
		}

		points[i] = PayoffPoint{Price: price, Payoff: payoff}
	}
	return points
}
