package domain

import "testing"

func TestTypesExist(t *testing.T) {
	// Verify Account can be instantiated with zero values.
	acc := Account{}
	if acc.ID != "" || acc.Type != "" || acc.Name != "" || acc.Status != "" {
		t.Error("expected empty fields for zero-value Account")
	}
	if acc.OpenedDate != "" {
		t.Error("expected empty OpenedDate for zero-value Account")
	}

	// Verify PortfolioItem can be instantiated with zero values.
	item := PortfolioItem{}
	if item.FIGI != "" || item.Ticker != "" || item.Name != "" {
		t.Error("expected empty identifiers for zero-value PortfolioItem")
	}
	if item.Quantity != 0 || item.CurrentPrice != 0 || item.CurrentValue != 0 {
		t.Error("expected zero valuation for zero-value PortfolioItem")
	}

	// Verify enum constants are defined correctly.
	if InstrumentTypeStock != "STOCK" {
		t.Errorf("InstrumentTypeStock = %q, want %q", InstrumentTypeStock, "STOCK")
	}
	if InstrumentTypeBond != "BOND" || InstrumentTypeETF != "ETF" || InstrumentTypeOther != "OTHER" {
		t.Error("instrument type constants have unexpected values")
	}

	// Verify structs can be constructed with real values.
	pos := Position{FIGI: "BBG004730N88", Balance: 10}
	if pos.Balance != 10 {
		t.Errorf("pos.Balance = %d, want %d", pos.Balance, 10)
	}
}

func TestQuotationToFloat(t *testing.T) {
	tests := []struct {
		name  string
		units int64
		nano  int32
		want  float64
	}{
		{"zero", 0, 0, 0},
		{"whole", 250, 0, 250},
		{"fraction", 114, 250000000, 114.25},
		{"nano only", 0, 500000000, 0.5},
		{"negative", -1, -500000000, -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotationToFloat(tt.units, tt.nano); got != tt.want {
				t.Errorf("QuotationToFloat(%d, %d) = %v, want %v", tt.units, tt.nano, got, tt.want)
			}
		})
	}
}

func TestMoneyFloat(t *testing.T) {
	m := Money{Units: 1000000, Nano: 0, Currency: "rub"}
	if got := m.Float(); got != 1000000 {
		t.Errorf("Money.Float() = %v, want %v", got, 1000000.0)
	}
}
