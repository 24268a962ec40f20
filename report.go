package cryptogains

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TaxReport is the aggregate output of the engine: overall realized gains,
// the jurisdiction's taxable figure and estimated tax, advisory notes, and
// the disposals in original sell order. It is constructed once at the end of
// the pipeline and never mutated.
type TaxReport struct {
	Jurisdiction   JurisdictionCode
	TotalGains     Money // sum of all disposal gains, identical for every jurisdiction
	TaxableGains   Money // after the jurisdiction's inclusion rules
	EstimatedTax   Money
	ShortTermGains *Money // present only for split-rate regimes
	LongTermGains  *Money
	Notes          []string
	Disposals      []Disposal
}

// MarshalJSON implements the json.Marshaler interface with a stable field
// order, so identical inputs marshal to byte-identical reports.
func (r *TaxReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("jurisdiction", r.Jurisdiction)
	w.Append("totalGains", r.TotalGains)
	w.Append("taxableGains", r.TaxableGains)
	w.Append("estimatedTax", r.EstimatedTax)
	if r.ShortTermGains != nil {
		w.Append("shortTermGains", r.ShortTermGains)
	}
	if r.LongTermGains != nil {
		w.Append("longTermGains", r.LongTermGains)
	}
	w.Append("notes", r.Notes)
	w.Append("disposals", r.Disposals)
	return w.MarshalJSON()
}

// ComputeTaxReport is the engine's single entry point: a pure function from
// (transactions, jurisdiction) to a finished report.
//
// The pipeline validates every transaction, partitions them by asset, matches
// sells against buy lots in FIFO order, applies the jurisdiction's policy to
// the resulting disposals, and aggregates the totals. Asset groups are
// independent, so the per-asset matching passes run concurrently; the final
// disposal list is restored to original input sell order.
//
// All errors are explicit return values. A sell exceeding the available lots
// surfaces as an *InsufficientLotsError, never as a silent zero-cost gain.
func ComputeTaxReport(txs []Transaction, jurisdiction JurisdictionCode) (*TaxReport, error) {
	if _, err := ParseJurisdiction(string(jurisdiction)); err != nil {
		return nil, err
	}

	currency := ""
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction #%d: %w", i, err)
		}
		if currency == "" {
			currency = tx.Price.Currency()
		} else if c := tx.Price.Currency(); c != "" && c != currency {
			return nil, fmt.Errorf("transaction #%d: currency %s does not match ledger currency %s", i, c, currency)
		}
	}

	byAsset := partition(txs)
	assets := make([]string, 0, len(byAsset))
	for asset := range byAsset {
		assets = append(assets, asset)
	}

	matched := make([][]Disposal, len(assets))
	var g errgroup.Group
	for i, asset := range assets {
		i, asset := i, asset
		g.Go(func() error {
			disposals, err := matchAsset(asset, byAsset[asset])
			matched[i] = disposals
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	disposals := make([]Disposal, 0, len(txs))
	for _, d := range matched {
		disposals = append(disposals, d...)
	}
	slices.SortFunc(disposals, func(a, b Disposal) int { return cmp.Compare(a.pos, b.pos) })

	result, err := applyPolicy(jurisdiction, disposals, currency)
	if err != nil {
		return nil, err
	}

	total := M(decimal.Zero, currency)
	for _, d := range disposals {
		total = total.Add(d.Gain)
	}

	return &TaxReport{
		Jurisdiction:   jurisdiction,
		TotalGains:     total,
		TaxableGains:   result.taxable,
		EstimatedTax:   result.estimatedTax,
		ShortTermGains: result.shortTerm,
		LongTermGains:  result.longTerm,
		Notes:          result.notes,
		Disposals:      disposals,
	}, nil
}
