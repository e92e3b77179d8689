package broker

import (
	"context"

	"investbridge/internal/domain"
)

// Compile-time interface check.
var _ Broker = (*SimulatorBroker)(nil)

// SimulatorBroker implements the Broker interface in memory, without making
// external API calls. It backs the operation tests: fixtures go into the
// exported maps, and the Err* fields inject failures per method.
type SimulatorBroker struct {
	Accounts  []domain.Account
	Positions map[string][]domain.Position // account ID -> positions
	Shares    map[string]domain.Instrument // FIGI -> stock
	Bonds     map[string]domain.Instrument // FIGI -> bond
	ETFs      map[string]domain.Instrument // FIGI -> ETF
	Found     []domain.Instrument          // FindInstruments result
	Prices    map[string]float64           // FIGI -> last price

	NextAccountID string
	PayInBalance  domain.Money

	ErrAccounts  error
	ErrPositions error
	ErrShare     error
	ErrBond      error
	ErrETF       error
	ErrFind      error
	ErrPrice     error
	ErrOpen      error
	ErrPayIn     error

	Closed bool
}

// NewSimulatorBroker creates a SimulatorBroker with empty fixture maps.
func NewSimulatorBroker() *SimulatorBroker {
	return &SimulatorBroker{
		Positions: make(map[string][]domain.Position),
		Shares:    make(map[string]domain.Instrument),
		Bonds:     make(map[string]domain.Instrument),
		ETFs:      make(map[string]domain.Instrument),
		Prices:    make(map[string]float64),
	}
}

// Name returns "simulator".
func (b *SimulatorBroker) Name() string { return "simulator" }

// GetAccounts returns the fixture accounts.
func (b *SimulatorBroker) GetAccounts(_ context.Context) ([]domain.Account, error) {
	if b.ErrAccounts != nil {
		return nil, b.ErrAccounts
	}
	return b.Accounts, nil
}

// GetPositions returns the fixture positions for one account.
func (b *SimulatorBroker) GetPositions(_ context.Context, accountID string) ([]domain.Position, error) {
	if b.ErrPositions != nil {
		return nil, b.ErrPositions
	}
	return b.Positions[accountID], nil
}

// ShareByFIGI resolves a FIGI against the stock fixtures.
func (b *SimulatorBroker) ShareByFIGI(_ context.Context, figi string) (*domain.Instrument, error) {
	if b.ErrShare != nil {
		return nil, b.ErrShare
	}
	if in, ok := b.Shares[figi]; ok {
		return &in, nil
	}
	return nil, nil
}

// BondByFIGI resolves a FIGI against the bond fixtures.
func (b *SimulatorBroker) BondByFIGI(_ context.Context, figi string) (*domain.Instrument, error) {
	if b.ErrBond != nil {
		return nil, b.ErrBond
	}
	if in, ok := b.Bonds[figi]; ok {
		return &in, nil
	}
	return nil, nil
}

// ETFByFIGI resolves a FIGI against the ETF fixtures.
func (b *SimulatorBroker) ETFByFIGI(_ context.Context, figi string) (*domain.Instrument, error) {
	if b.ErrETF != nil {
		return nil, b.ErrETF
	}
	if in, ok := b.ETFs[figi]; ok {
		return &in, nil
	}
	return nil, nil
}

// FindInstruments returns the fixture search result.
func (b *SimulatorBroker) FindInstruments(_ context.Context, _ string) ([]domain.Instrument, error) {
	if b.ErrFind != nil {
		return nil, b.ErrFind
	}
	return b.Found, nil
}

// GetLastPrice returns the fixture price, or ErrNoPriceData for unknown
// FIGIs, mirroring an empty last-price list from the remote side.
func (b *SimulatorBroker) GetLastPrice(_ context.Context, figi string) (float64, error) {
	if b.ErrPrice != nil {
		return 0, b.ErrPrice
	}
	price, ok := b.Prices[figi]
	if !ok {
		return 0, ErrNoPriceData
	}
	return price, nil
}

// OpenSandboxAccount returns the configured next account ID.
func (b *SimulatorBroker) OpenSandboxAccount(_ context.Context) (string, error) {
	if b.ErrOpen != nil {
		return "", b.ErrOpen
	}
	return b.NextAccountID, nil
}

// SandboxPayIn echoes the deposited amount unless a fixture balance is set.
func (b *SimulatorBroker) SandboxPayIn(_ context.Context, _ string, amount domain.Money) (domain.Money, error) {
	if b.ErrPayIn != nil {
		return domain.Money{}, b.ErrPayIn
	}
	if b.PayInBalance != (domain.Money{}) {
		return b.PayInBalance, nil
	}
	return amount, nil
}

// Close marks the simulator as closed.
func (b *SimulatorBroker) Close() error {
	b.Closed = true
	return nil
}
