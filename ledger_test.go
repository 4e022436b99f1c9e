package fifo

import (
	"testing"
)

// apply folds a compact trade log into a fresh ledger.
func apply(t *testing.T, class AssetClass, trades []Trade) *Ledger {
	t.Helper()
	ledger := NewLedger(class.Rules())
	for _, trade := range trades {
		ledger.Apply(trade)
	}
	return ledger
}

func trade(security, action string, quantity, price float64) Trade {
	return Trade{Security: security, Action: action, Quantity: Q(quantity), Price: P(price)}
}

func TestLedger_Apply_FIFO(t *testing.T) {
	// Buy 10 @ 100, Buy 5 @ 120, Sell 12: the older, more expensive lot
	// must go first, leaving 3 @ 120.
	ledger := apply(t, Equity, []Trade{
		trade("TICK", "Buy", 10, 100),
		trade("TICK", "Buy", 5, 120),
		trade("TICK", "Sell", 12, 0),
	})

	positions := ledger.Positions()
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
	p := positions[0]
	if p.Security != "TICK" {
		t.Errorf("security = %q, want %q", p.Security, "TICK")
	}
	if want := Q(3); !p.Quantity.Equal(want) {
		t.Errorf("quantity = %s, want %s", p.Quantity, want)
	}
	if want := P(120); !p.AverageCost.Equal(want) {
		t.Errorf("average cost = %s, want %s", p.AverageCost, want)
	}
}

func TestLedger_Apply_SingleBuy(t *testing.T) {
	ledger := apply(t, Equity, []Trade{trade("TICK", "Buy", 10, 10)})

	positions := ledger.Positions()
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
	p := positions[0]
	if p.Security != "TICK" || !p.Quantity.Equal(Q(10)) || !p.AverageCost.Equal(P(10)) {
		t.Errorf("got (%s, %s, %s), want (TICK, 10, 10)", p.Security, p.Quantity, p.AverageCost)
	}
}

func TestLedger_Apply_FullLiquidation(t *testing.T) {
	ledger := apply(t, Crypto, []Trade{
		trade("BTC", "Buy", 1, 30000),
		trade("BTC", "Sell", 1, 0),
	})

	if got := ledger.Positions(); len(got) != 0 {
		t.Errorf("got %d positions after full liquidation, want 0", len(got))
	}
	if got := ledger.Securities(); len(got) != 0 {
		t.Errorf("ledger still holds %v after full liquidation", got)
	}
}

func TestLedger_Apply_Oversell(t *testing.T) {
	ledger := apply(t, Equity, []Trade{
		trade("TICK", "Buy", 1, 50),
		trade("TICK", "Sell", 1.5, 0),
	})

	if got := ledger.Positions(); len(got) != 0 {
		t.Errorf("got %d positions after oversell, want 0", len(got))
	}
}

func TestLedger_Apply_SellWithoutHistory(t *testing.T) {
	ledger := apply(t, Equity, []Trade{
		trade("GHOST", "Sell", 5, 0),
		trade("TICK", "Buy", 2, 10),
	})

	positions := ledger.Positions()
	if len(positions) != 1 || positions[0].Security != "TICK" {
		t.Errorf("got %v, want only TICK", positions)
	}
}

func TestLedger_Apply_UnknownActionIgnored(t *testing.T) {
	ledger := apply(t, Equity, []Trade{
		trade("TICK", "Buy", 10, 10),
		trade("TICK", "Transfer", 5, 0),
		trade("TICK", "Note", 1, 0),
	})

	positions := ledger.Positions()
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
	if want := Q(10); !positions[0].Quantity.Equal(want) {
		t.Errorf("quantity = %s, want %s: unknown actions must not mutate the ledger", positions[0].Quantity, want)
	}
}

func TestLedger_Apply_ActionCase(t *testing.T) {
	testCases := []struct {
		name   string
		class  AssetClass
		action string
		held   bool // security holds an open lot afterwards
	}{
		{"Buy is an acquisition", Equity, "Buy", true},
		{"BUY is not Buy", Equity, "BUY", false},
		{"buy is not Buy", Equity, "buy", false},
		{"DRIP is an acquisition", Equity, "DRIP", true},
		{"drip matches case-insensitively", Equity, "drip", true},
		{"Drip matches case-insensitively", Equity, "Drip", true},
		{"REWARD is not an equity action", Equity, "REWARD", false},
		{"REWARD is a crypto acquisition", Crypto, "REWARD", true},
		{"reward matches case-insensitively", Crypto, "reward", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := apply(t, tc.class, []Trade{trade("TICK", tc.action, 1, 10)})
			if held := ledger.Lots("TICK") > 0; held != tc.held {
				t.Errorf("after %q: held = %v, want %v", tc.action, held, tc.held)
			}
		})
	}
}

func TestLedger_Apply_SellCaseSensitive(t *testing.T) {
	ledger := apply(t, Equity, []Trade{
		trade("TICK", "Buy", 10, 10),
		trade("TICK", "SELL", 5, 0),
		trade("TICK", "sell", 5, 0),
	})

	positions := ledger.Positions()
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
	if want := Q(10); !positions[0].Quantity.Equal(want) {
		t.Errorf("quantity = %s, want %s: only exactly 'Sell' disposes", positions[0].Quantity, want)
	}
}

func TestLedger_Positions_FirstSeenOrder(t *testing.T) {
	ledger := apply(t, Equity, []Trade{
		trade("BBB", "Buy", 1, 10),
		trade("AAA", "Buy", 1, 10),
		trade("CCC", "Buy", 1, 10),
		trade("BBB", "Buy", 1, 12),
	})

	var got []string
	for _, p := range ledger.Positions() {
		got = append(got, p.Security)
	}
	want := []string{"BBB", "AAA", "CCC"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLedger_Positions_ReacquisitionMovesToEnd(t *testing.T) {
	// A fully liquidated security that is bought again re-enters the
	// iteration order at the end, like a deleted and re-inserted map key.
	ledger := apply(t, Equity, []Trade{
		trade("AAA", "Buy", 1, 10),
		trade("BBB", "Buy", 1, 10),
		trade("AAA", "Sell", 1, 0),
		trade("AAA", "Buy", 2, 15),
	})

	positions := ledger.Positions()
	if len(positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(positions))
	}
	if positions[0].Security != "BBB" || positions[1].Security != "AAA" {
		t.Errorf("order = [%s, %s], want [BBB, AAA]", positions[0].Security, positions[1].Security)
	}
}

func TestLedger_Positions_Idempotent(t *testing.T) {
	ledger := apply(t, Equity, []Trade{
		trade("TICK", "Buy", 10, 100),
		trade("TICK", "Sell", 4, 0),
	})

	first := ledger.Positions()
	second := ledger.Positions()

	if len(first) != len(second) {
		t.Fatalf("projection changed between calls: %d vs %d rows", len(first), len(second))
	}
	for i := range first {
		if first[i].Security != second[i].Security ||
			!first[i].Quantity.Equal(second[i].Quantity) ||
			!first[i].AverageCost.Equal(second[i].AverageCost) {
			t.Errorf("row %d changed between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

// With no disposals, the output quantity is exactly the sum of acquired
// quantities.
func TestLedger_Conservation(t *testing.T) {
	ledger := apply(t, Crypto, []Trade{
		trade("ETH", "Buy", 0.5, 2000),
		trade("ETH", "REWARD", 0.03125, 0),
		trade("ETH", "Buy", 1.25, 1800),
	})

	positions := ledger.Positions()
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
	if want := Q(1.78125); !positions[0].Quantity.Equal(want) {
		t.Errorf("quantity = %s, want %s", positions[0].Quantity, want)
	}
}

func TestPositions_Pipeline(t *testing.T) {
	// The one-call pipeline over the four parallel columns.
	got, err := Positions(Equity,
		[]string{"TICK", "TICK", "TICK"},
		[]string{"Buy", "Buy", "Sell"},
		[]float64{10, 5, 12},
		[]float64{100, 120, 150},
	)
	if err != nil {
		t.Fatalf("Positions() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d positions, want 1", len(got))
	}
	if !got[0].Quantity.Equal(Q(3)) || !got[0].AverageCost.Equal(P(120)) {
		t.Errorf("got (%s, %s), want (3, 120)", got[0].Quantity, got[0].AverageCost)
	}
}

func TestPositions_PipelineRejectsBadInput(t *testing.T) {
	_, err := Positions(Equity,
		[]string{"TICK"},
		[]string{"Buy", "Sell"},
		[]float64{1},
		[]float64{10},
	)
	if err == nil {
		t.Fatal("Positions() accepted unequal columns, want error")
	}
}
