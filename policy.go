package cryptogains

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scalar rates used by the policies. Declared as decimals so the arithmetic
// stays exact end to end.
var (
	half       = Q(decimal.New(5, -1))  // 0.5
	inFlatRate = Q(decimal.New(30, -2)) // 0.30
)

// policyResult is what a jurisdiction policy computes from the disposal list.
// Every policy emits at least one note disclosing its simplifying
// assumptions; a policy with zero notes is a defect.
type policyResult struct {
	taxable      Money
	estimatedTax Money
	shortTerm    *Money // only for split-rate regimes
	longTerm     *Money
	notes        []string
}

// applyPolicy dispatches over the closed jurisdiction enumeration. Each
// jurisdiction is a distinct hand-coded function of the disposal list; there
// is deliberately no generic rules engine behind this switch.
func applyPolicy(code JurisdictionCode, disposals []Disposal, currency string) (policyResult, error) {
	switch code {
	case US:
		return policyUS(disposals, currency), nil
	case IN:
		return policyIN(disposals, currency), nil
	case GB:
		return policyGB(disposals, currency), nil
	case CA:
		return policyCA(disposals, currency), nil
	case AU:
		return policyAU(disposals, currency), nil
	case DE:
		return policyDE(disposals, currency), nil
	case AE:
		return policyAE(currency), nil
	default:
		return policyResult{}, fmt.Errorf("unknown jurisdiction code: %q", code)
	}
}

// netGain sums the signed gains of all disposals.
func netGain(disposals []Disposal, currency string) Money {
	total := M(decimal.Zero, currency)
	for _, d := range disposals {
		total = total.Add(d.Gain)
	}
	return total
}

// policyUS taxes all gains, split into short-term and long-term buckets at a
// 365-day weighted holding period. No flat rate exists: the estimate is left
// to the user's bracket.
func policyUS(disposals []Disposal, currency string) policyResult {
	short := M(decimal.Zero, currency)
	long := M(decimal.Zero, currency)
	for _, d := range disposals {
		if d.LongTerm() {
			long = long.Add(d.Gain)
		} else {
			short = short.Add(d.Gain)
		}
	}
	return policyResult{
		taxable:      short.Add(long),
		estimatedTax: M(decimal.Zero, currency),
		shortTerm:    &short,
		longTerm:     &long,
		notes: []string{
			"US: long-term gains (held over 365 days) are taxed at lower rates than short-term gains.",
			"US: no tax estimate is computed; the rate depends on your income bracket. Progressive brackets and loss carry-forward are not modeled.",
		},
	}
}

// policyIN taxes all gains at a flat 30%, with no holding-period distinction.
func policyIN(disposals []Disposal, currency string) policyResult {
	taxable := netGain(disposals, currency)
	tax := M(decimal.Zero, currency)
	if taxable.IsPositive() {
		tax = taxable.Mul(inFlatRate)
	}
	return policyResult{
		taxable:      taxable,
		estimatedTax: tax,
		notes: []string{
			"IN: flat 30% rate applied to positive net gains; there is no holding-period distinction.",
			"IN: the 1% TDS withheld on large transfers is not modeled.",
		},
	}
}

// policyGB taxes all gains, computed here with FIFO. The real HMRC rule is
// share pooling (Section 104 average cost), so this result is deliberately
// labeled non-compliant rather than silently presented as correct.
func policyGB(disposals []Disposal, currency string) policyResult {
	return policyResult{
		taxable:      netGain(disposals, currency),
		estimatedTax: M(decimal.Zero, currency),
		notes: []string{
			"GB: HMRC requires share-pooling (Section 104 average cost), not FIFO. This FIFO figure is an approximation and is NOT compliant with UK matching rules.",
			"GB: no tax estimate is computed; annual exemption and rate bands are not modeled.",
		},
	}
}

// policyCA includes 50% of net gains in taxable income.
func policyCA(disposals []Disposal, currency string) policyResult {
	return policyResult{
		taxable:      netGain(disposals, currency).Mul(half),
		estimatedTax: M(decimal.Zero, currency),
		notes: []string{
			"CA: only 50% of net capital gains enters taxable income; the marginal rate applied to it is not computed.",
		},
	}
}

// policyAU gives gains held over 12 months a further 50% discount before
// inclusion; shorter-held gains and all losses are included in full.
func policyAU(disposals []Disposal, currency string) policyResult {
	taxable := M(decimal.Zero, currency)
	for _, d := range disposals {
		if d.Gain.IsPositive() && d.LongTerm() {
			taxable = taxable.Add(d.Gain.Mul(half))
		} else {
			taxable = taxable.Add(d.Gain)
		}
	}
	return policyResult{
		taxable:      taxable,
		estimatedTax: M(decimal.Zero, currency),
		notes: []string{
			"AU: the 50% CGT discount is applied to gains held over 12 months; no tax estimate is computed and the discount eligibility rules are simplified.",
		},
	}
}

// policyDE taxes only disposals whose weighted holding period is one year or
// less; longer holds are excluded entirely.
func policyDE(disposals []Disposal, currency string) policyResult {
	taxable := M(decimal.Zero, currency)
	for _, d := range disposals {
		if !d.LongTerm() {
			taxable = taxable.Add(d.Gain)
		}
	}
	return policyResult{
		taxable:      taxable,
		estimatedTax: M(decimal.Zero, currency),
		notes: []string{
			"DE: private sales of crypto held over one year are tax-free; only disposals held 365 days or less are counted. The EUR 1000 exemption limit is not modeled.",
		},
	}
}

// policyAE computes zero: no capital-gains tax applies to individuals.
func policyAE(currency string) policyResult {
	return policyResult{
		taxable:      M(decimal.Zero, currency),
		estimatedTax: M(decimal.Zero, currency),
		notes: []string{
			"AE: no capital-gains tax applies to crypto held by individuals.",
		},
	}
}
