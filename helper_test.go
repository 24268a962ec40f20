package cryptogains

import (
	"testing"

	"cryptogains/date"
)

// day is a test shorthand for date.MustParse.
func day(s string) date.Date { return date.MustParse(s) }

// usd is a test shorthand for a USD amount.
func usd(v float64) Money { return M(v, "USD") }

// buy and sell are test shorthands for transactions priced in USD.
func buy(d, asset string, qty, price float64) Transaction {
	return NewBuy(day(d), asset, Q(qty), usd(price))
}

func sell(d, asset string, qty, price float64) Transaction {
	return NewSell(day(d), asset, Q(qty), usd(price))
}

// assertMoney fails the test when got is not the expected USD amount.
func assertMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.Equal(usd(want)) {
		t.Errorf("%s = %s USD, want %v", name, got, want)
	}
}
