// Package cryptogains computes realized capital gains on crypto asset
// transactions and estimates the tax treatment under a selected jurisdiction.
//
// The engine is a pure pipeline: transactions are partitioned by asset, each
// asset's sells are matched against its buy lots in FIFO order to produce
// disposals, a jurisdiction policy turns the disposals into taxable figures
// and advisory notes, and everything is aggregated into a TaxReport.
//
// All quantity and money arithmetic is exact decimal; currency figures are
// rounded only at presentation time. The single entry point is
// ComputeTaxReport.
package cryptogains
