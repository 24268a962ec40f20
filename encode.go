package cryptogains

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"cryptogains/date"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txLine is a specialized struct for decoding one ledger line, where the
// unit price and its currency are two separate fields.
type txLine struct {
	Kind     Kind            `json:"kind"`
	Date     date.Date       `json:"date"`
	Asset    string          `json:"asset"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

func (l txLine) transaction() Transaction {
	return Transaction{
		Kind:     l.Kind,
		Asset:    l.Asset,
		Quantity: l.Quantity,
		Price:    M(l.Price, l.Currency),
		Date:     l.Date,
	}
}

// DecodeTransactions reads transactions from a stream of JSONL data, one
// JSON object per line, validates each one, and returns them in file order.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue // Skip empty lines
		}
		var temp txLine
		if err := json.Unmarshal(raw, &temp); err != nil {
			return nil, fmt.Errorf("line %d: could not decode transaction: %w", line, err)
		}
		tx := temp.transaction()
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return txs, nil
}

// EncodeTransaction writes a single transaction as one canonical JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	raw, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", raw); err != nil {
		return err
	}
	return nil
}

// EncodeTransactions writes transactions in canonical JSONL form, one per line.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// EncodeReport writes the report as a single canonical JSON object.
func EncodeReport(w io.Writer, report *TaxReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("could not encode report: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", raw); err != nil {
		return err
	}
	return nil
}
