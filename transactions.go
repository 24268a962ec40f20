package cryptogains

import (
	"fmt"

	"cryptogains/date"
)

// Kind is a typed string identifying the two transaction commands.
type Kind string

// Kinds of transactions the engine accepts.
const (
	KindBuy  Kind = "buy"
	KindSell Kind = "sell"
)

// Transaction is an immutable input record: the acquisition or disposal of a
// quantity of an asset at a unit price on a given day.
//
// The import/form layer upstream is responsible for producing well-formed
// transactions; Validate re-checks those preconditions and the engine fails
// with a domain error rather than silently coercing bad input.
type Transaction struct {
	Kind     Kind      // buy or sell
	Asset    string    // asset symbol, case-sensitive identity key
	Quantity Quantity  // positive, fractional units supported
	Price    Money     // positive unit price in the user's stated currency
	Date     date.Date // calendar day of the transaction
}

// NewBuy creates a new buy transaction.
func NewBuy(day date.Date, asset string, quantity Quantity, price Money) Transaction {
	return Transaction{Kind: KindBuy, Asset: asset, Quantity: quantity, Price: price, Date: day}
}

// NewSell creates a new sell transaction.
func NewSell(day date.Date, asset string, quantity Quantity, price Money) Transaction {
	return Transaction{Kind: KindSell, Asset: asset, Quantity: quantity, Price: price, Date: day}
}

// Validate checks the transaction's preconditions.
func (t Transaction) Validate() error {
	switch t.Kind {
	case KindBuy, KindSell:
	default:
		return fmt.Errorf("transaction kind must be %q or %q, got %q", KindBuy, KindSell, t.Kind)
	}
	if t.Asset == "" {
		return fmt.Errorf("%s transaction is missing an asset symbol", t.Kind)
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("%s %s quantity must be positive, got %s", t.Kind, t.Asset, t.Quantity)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("%s %s unit price must be positive, got %s", t.Kind, t.Asset, t.Price)
	}
	if t.Price.Currency() == "" {
		return fmt.Errorf("%s %s unit price has no currency", t.Kind, t.Asset)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%s %s transaction has no date", t.Kind, t.Asset)
	}
	return nil
}

// Equal reports whether two transactions are identical.
func (t Transaction) Equal(o Transaction) bool {
	return t.Kind == o.Kind && t.Asset == o.Asset && t.Date == o.Date &&
		t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind)
	w.Append("date", t.Date)
	w.Append("asset", t.Asset)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.value)
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}
