package cryptogains

import "cryptogains/date"

// Disposal is the result of matching one sell transaction against one or
// more lots: the realized proceeds, cost basis, signed gain, and the
// quantity-weighted holding period over the lots actually consumed.
type Disposal struct {
	Asset             string
	SellDate          date.Date
	Quantity          Quantity
	Proceeds          Money
	CostBasis         Money
	Gain              Money // Proceeds - CostBasis, signed
	HoldingPeriodDays int64 // quantity-weighted average, rounded to nearest day

	pos int // original input position of the sell, used to restore input order
}

// LongTerm reports whether the disposal's weighted holding period exceeds one year.
func (d Disposal) LongTerm() bool { return d.HoldingPeriodDays > 365 }

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (d Disposal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("asset", d.Asset)
	w.Append("sellDate", d.SellDate)
	w.Append("quantity", d.Quantity)
	w.Append("proceeds", d.Proceeds)
	w.Append("costBasis", d.CostBasis)
	w.Append("gain", d.Gain)
	w.Append("holdingPeriodDays", d.HoldingPeriodDays)
	return w.MarshalJSON()
}
