package cryptogains

import "testing"

func TestPartition_GroupsByAssetAndKind(t *testing.T) {
	txs := []Transaction{
		buy("2025-01-01", "BTC", 1, 100),
		sell("2025-02-01", "ETH", 2, 50),
		buy("2025-01-15", "ETH", 3, 40),
		sell("2025-03-01", "BTC", 1, 200),
	}

	byAsset := partition(txs)
	if len(byAsset) != 2 {
		t.Fatalf("partition() produced %d assets, want 2", len(byAsset))
	}

	btc := byAsset["BTC"]
	if len(btc.buys) != 1 || len(btc.sells) != 1 {
		t.Errorf("BTC: got %d buys and %d sells, want 1 and 1", len(btc.buys), len(btc.sells))
	}
	eth := byAsset["ETH"]
	if len(eth.buys) != 1 || len(eth.sells) != 1 {
		t.Errorf("ETH: got %d buys and %d sells, want 1 and 1", len(eth.buys), len(eth.sells))
	}

	// Nothing dropped or duplicated.
	total := 0
	for _, h := range byAsset {
		total += len(h.buys) + len(h.sells)
	}
	if total != len(txs) {
		t.Errorf("partition() kept %d transactions, want %d", total, len(txs))
	}
}

func TestPartition_SortsByDate(t *testing.T) {
	txs := []Transaction{
		buy("2025-03-01", "BTC", 1, 300),
		buy("2025-01-01", "BTC", 1, 100),
		buy("2025-02-01", "BTC", 1, 200),
	}

	buys := partition(txs)["BTC"].buys
	for i := 1; i < len(buys); i++ {
		if buys[i].tx.Date.Before(buys[i-1].tx.Date) {
			t.Fatalf("buys not sorted by date: %s before %s", buys[i].tx.Date, buys[i-1].tx.Date)
		}
	}
	if !buys[0].tx.Price.Equal(usd(100)) {
		t.Errorf("earliest buy has price %s, want 100 USD", buys[0].tx.Price)
	}
}

func TestPartition_SameDateKeepsInputOrder(t *testing.T) {
	// Two buys on the same day with different prices: the tie-break is
	// strict input order, no secondary sort key.
	txs := []Transaction{
		buy("2025-01-01", "BTC", 1, 500),
		buy("2025-01-01", "BTC", 1, 100),
	}

	buys := partition(txs)["BTC"].buys
	if !buys[0].tx.Price.Equal(usd(500)) || !buys[1].tx.Price.Equal(usd(100)) {
		t.Errorf("same-date buys reordered: got %s then %s, want 500 then 100",
			buys[0].tx.Price, buys[1].tx.Price)
	}
	if buys[0].pos != 0 || buys[1].pos != 1 {
		t.Errorf("positions = %d, %d, want 0, 1", buys[0].pos, buys[1].pos)
	}
}

func TestPartition_CaseSensitiveAssets(t *testing.T) {
	txs := []Transaction{
		buy("2025-01-01", "btc", 1, 100),
		buy("2025-01-01", "BTC", 1, 100),
	}
	if got := len(partition(txs)); got != 2 {
		t.Errorf("partition() produced %d assets, want 2 (asset symbols are case-sensitive)", got)
	}
}
