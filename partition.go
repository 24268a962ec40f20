package cryptogains

import "slices"

// indexedTx pairs a transaction with its position in the engine's input,
// so disposals can be emitted in the original sell order even though
// matching proceeds in date order (and per-asset passes may run concurrently).
type indexedTx struct {
	tx  Transaction
	pos int
}

// assetHistory is the partitioned history of a single asset: its buys and
// sells, each sorted ascending by date with ties keeping input order.
type assetHistory struct {
	buys  []indexedTx
	sells []indexedTx
}

// partition groups a flat transaction list by asset symbol and splits each
// group into chronologically ordered buy and sell sequences. No transaction
// is dropped or duplicated; the input is never mutated.
func partition(txs []Transaction) map[string]*assetHistory {
	byAsset := make(map[string]*assetHistory)
	for i, tx := range txs {
		h := byAsset[tx.Asset]
		if h == nil {
			h = &assetHistory{}
			byAsset[tx.Asset] = h
		}
		switch tx.Kind {
		case KindBuy:
			h.buys = append(h.buys, indexedTx{tx: tx, pos: i})
		case KindSell:
			h.sells = append(h.sells, indexedTx{tx: tx, pos: i})
		}
	}
	// Stable sort: same-date transactions keep strict input order,
	// no secondary key is ever applied.
	byDate := func(a, b indexedTx) int {
		switch {
		case a.tx.Date.Before(b.tx.Date):
			return -1
		case a.tx.Date.After(b.tx.Date):
			return 1
		default:
			return 0
		}
	}
	for _, h := range byAsset {
		slices.SortStableFunc(h.buys, byDate)
		slices.SortStableFunc(h.sells, byDate)
	}
	return byAsset
}
