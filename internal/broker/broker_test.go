package broker

import (
	"context"
	"errors"
	"testing"

	"investbridge/internal/domain"
)

func TestSimulatorBrokerName(t *testing.T) {
	b := NewSimulatorBroker()
	if got := b.Name(); got != "simulator" {
		t.Errorf("SimulatorBroker.Name() = %q, want %q", got, "simulator")
	}
}

func TestSimulatorLookups(t *testing.T) {
	ctx := context.Background()
	b := NewSimulatorBroker()
	b.Shares["BBG004730N88"] = domain.Instrument{FIGI: "BBG004730N88", Ticker: "SBER", Name: "Sberbank"}

	in, err := b.ShareByFIGI(ctx, "BBG004730N88")
	if err != nil {
		t.Fatalf("ShareByFIGI returned error: %v", err)
	}
	if in == nil || in.Ticker != "SBER" {
		t.Fatalf("ShareByFIGI = %+v, want ticker SBER", in)
	}

	// Unknown FIGIs resolve to (nil, nil) for every instrument kind.
	for name, fn := range map[string]func(context.Context, string) (*domain.Instrument, error){
		"ShareByFIGI": b.ShareByFIGI,
		"BondByFIGI":  b.BondByFIGI,
		"ETFByFIGI":   b.ETFByFIGI,
	} {
		in, err := fn(ctx, "BBG000000000")
		if err != nil {
			t.Errorf("%s returned error for unknown FIGI: %v", name, err)
		}
		if in != nil {
			t.Errorf("%s = %+v for unknown FIGI, want nil", name, in)
		}
	}
}

func TestSimulatorPriceMissing(t *testing.T) {
	b := NewSimulatorBroker()
	_, err := b.GetLastPrice(context.Background(), "BBG000000000")
	if !errors.Is(err, ErrNoPriceData) {
		t.Errorf("GetLastPrice error = %v, want ErrNoPriceData", err)
	}
}

func TestSimulatorErrorInjection(t *testing.T) {
	b := NewSimulatorBroker()
	injected := errors.New("boom")
	b.ErrAccounts = injected

	if _, err := b.GetAccounts(context.Background()); !errors.Is(err, injected) {
		t.Errorf("GetAccounts error = %v, want injected error", err)
	}
}

func TestSimulatorClose(t *testing.T) {
	b := NewSimulatorBroker()
	if err := b.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !b.Closed {
		t.Error("Closed = false after Close")
	}
}
