package cryptogains

import (
	"fmt"

	"cryptogains/date"

	"github.com/shopspring/decimal"
)

// lot is the live remainder of a single buy, used only inside one asset's
// matching pass. The remaining quantity decreases as later sells consume it;
// the unit price and acquisition date never change.
type lot struct {
	date      date.Date
	remaining Quantity
	unitPrice Money
}

// lotQueue is a FIFO queue of lots over a growable array with a head index.
// Lots are created once per asset pass and consumed front-to-back.
type lotQueue struct {
	lots []lot
	head int
}

func newLotQueue(buys []indexedTx) *lotQueue {
	q := &lotQueue{lots: make([]lot, 0, len(buys))}
	for _, b := range buys {
		q.lots = append(q.lots, lot{date: b.tx.Date, remaining: b.tx.Quantity, unitPrice: b.tx.Price})
	}
	return q
}

func (q *lotQueue) empty() bool { return q.head >= len(q.lots) }
func (q *lotQueue) front() *lot { return &q.lots[q.head] }
func (q *lotQueue) pop()        { q.head++ }

// InsufficientLotsError reports a sell that could not be fully satisfied
// from the asset's remaining lots. It carries the unmatched remainder so the
// caller can decide disposition; the engine never fabricates a zero-cost
// basis for the shortfall.
type InsufficientLotsError struct {
	Asset     string
	SellDate  date.Date
	Requested Quantity
	Unmatched Quantity
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("on %s, sell of %s %s exceeds the remaining lots by %s",
		e.SellDate, e.Requested, e.Asset, e.Unmatched)
}

// matchAsset consumes the asset's buy lots in FIFO order to satisfy each
// sell, producing one Disposal per sell. Both lists must be date-ascending
// (the partitioner guarantees it). The returned disposals follow the sells'
// order; the caller restores global input order from Disposal.pos.
func matchAsset(asset string, h *assetHistory) ([]Disposal, error) {
	queue := newLotQueue(h.buys)
	disposals := make([]Disposal, 0, len(h.sells))

	for _, s := range h.sells {
		sell := s.tx
		remainingToSell := sell.Quantity
		costBasis := M(decimal.Zero, sell.Price.Currency())
		weightedDays := decimal.Zero

		for remainingToSell.IsPositive() {
			// Lots acquired after the sell date are not yet available to it:
			// only quantity bought-and-not-yet-sold by that day can fund a sell.
			// The queue is date-ascending, so a future front lot drains it.
			if queue.empty() || queue.front().date.After(sell.Date) {
				return nil, &InsufficientLotsError{
					Asset:     asset,
					SellDate:  sell.Date,
					Requested: sell.Quantity,
					Unmatched: remainingToSell,
				}
			}
			l := queue.front()
			consumed := remainingToSell.Min(l.remaining)

			costBasis = costBasis.Add(l.unitPrice.Mul(consumed))
			days := decimal.NewFromInt(int64(sell.Date.Sub(l.date)))
			weightedDays = weightedDays.Add(consumed.value.Mul(days))

			l.remaining = l.remaining.Sub(consumed)
			remainingToSell = remainingToSell.Sub(consumed)
			if l.remaining.IsZero() {
				queue.pop()
			}
		}

		proceeds := sell.Price.Mul(sell.Quantity)
		disposals = append(disposals, Disposal{
			Asset:             asset,
			SellDate:          sell.Date,
			Quantity:          sell.Quantity,
			Proceeds:          proceeds,
			CostBasis:         costBasis,
			Gain:              proceeds.Sub(costBasis),
			HoldingPeriodDays: weightedDays.Div(sell.Quantity.value).Round(0).IntPart(),
			pos:               s.pos,
		})
	}
	return disposals, nil
}
