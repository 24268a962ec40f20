package cryptogains

import (
	"bytes"
	"strings"
	"testing"
)

const sampleLedger = `{"kind":"buy","date":"2025-01-01","asset":"BTC","quantity":10,"price":100,"currency":"USD"}
{"kind":"buy","date":"2025-01-05","asset":"BTC","quantity":10,"price":200,"currency":"USD"}
{"kind":"sell","date":"2025-01-10","asset":"BTC","quantity":15,"price":300,"currency":"USD"}
`

func TestDecodeTransactions(t *testing.T) {
	txs, err := DecodeTransactions(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txs))
	}
	want := buy("2025-01-01", "BTC", 10, 100)
	if !txs[0].Equal(want) {
		t.Errorf("txs[0] = %+v, want %+v", txs[0], want)
	}
	if txs[2].Kind != KindSell {
		t.Errorf("txs[2].Kind = %s, want sell", txs[2].Kind)
	}
}

func TestDecodeTransactions_SkipsEmptyLines(t *testing.T) {
	in := "\n" + sampleLedger + "\n"
	txs, err := DecodeTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(txs) != 3 {
		t.Errorf("got %d transactions, want 3", len(txs))
	}
}

func TestDecodeTransactions_RejectsMalformedLine(t *testing.T) {
	in := `{"kind":"buy","date":"2025-01-01"` // truncated JSON
	_, err := DecodeTransactions(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("DecodeTransactions() error = %v, want line 1 decode error", err)
	}
}

func TestDecodeTransactions_RejectsInvalidTransaction(t *testing.T) {
	in := sampleLedger + `{"kind":"sell","date":"2025-02-01","asset":"BTC","quantity":-5,"price":100,"currency":"USD"}` + "\n"
	_, err := DecodeTransactions(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 4") {
		t.Fatalf("DecodeTransactions() error = %v, want line 4 validation error", err)
	}
}

func TestEncodeTransactions_CanonicalRoundTrip(t *testing.T) {
	txs, err := DecodeTransactions(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, txs); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}
	if buf.String() != sampleLedger {
		t.Errorf("canonical form differs from input:\ngot  %q\nwant %q", buf.String(), sampleLedger)
	}

	back, err := DecodeTransactions(&buf)
	if err != nil {
		t.Fatalf("DecodeTransactions(round trip) error = %v", err)
	}
	for i := range txs {
		if !back[i].Equal(txs[i]) {
			t.Errorf("round trip tx %d = %+v, want %+v", i, back[i], txs[i])
		}
	}
}

func TestEncodeReport_StableFieldOrder(t *testing.T) {
	txs, err := DecodeTransactions(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	report, err := ComputeTaxReport(txs, US)
	if err != nil {
		t.Fatalf("ComputeTaxReport() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeReport(&buf, report); err != nil {
		t.Fatalf("EncodeReport() error = %v", err)
	}
	out := buf.String()

	fields := []string{"jurisdiction", "totalGains", "taxableGains", "estimatedTax", "shortTermGains", "longTermGains", "notes", "disposals"}
	last := -1
	for _, field := range fields {
		i := strings.Index(out, `"`+field+`"`)
		if i < 0 {
			t.Fatalf("report JSON is missing field %q:\n%s", field, out)
		}
		if i < last {
			t.Errorf("field %q is out of order", field)
		}
		last = i
	}
}
