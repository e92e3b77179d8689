// Package broker defines the Broker interface and provides implementations
// for the brokerage operations investbridge fronts: account listing,
// position listing, instrument resolution, last prices, and sandbox account
// management.
package broker

import (
	"context"
	"errors"

	"investbridge/internal/domain"
)

// ErrNoPriceData is returned by GetLastPrice when the remote side reports an
// empty last-price list for the requested instrument.
var ErrNoPriceData = errors.New("no price data")

// Broker abstracts the remote financial-data service. One Broker is dialed
// per process invocation and must be closed when the operation completes,
// on error paths included.
//
// The instrument lookups return (nil, nil) when the remote side answers but
// knows no instrument of that kind for the identifier; callers treat errors
// and nil results the same way when classifying.
type Broker interface {
	// Name returns the broker identifier (e.g. "tinkoff", "simulator").
	Name() string

	// GetAccounts lists the accounts visible to the supplied token.
	GetAccounts(ctx context.Context) ([]domain.Account, error)

	// GetPositions lists the security positions held in one account.
	GetPositions(ctx context.Context, accountID string) ([]domain.Position, error)

	// ShareByFIGI resolves a FIGI as a stock.
	ShareByFIGI(ctx context.Context, figi string) (*domain.Instrument, error)

	// BondByFIGI resolves a FIGI as a bond.
	BondByFIGI(ctx context.Context, figi string) (*domain.Instrument, error)

	// ETFByFIGI resolves a FIGI as an ETF.
	ETFByFIGI(ctx context.Context, figi string) (*domain.Instrument, error)

	// FindInstruments searches instruments by free-text query.
	FindInstruments(ctx context.Context, query string) ([]domain.Instrument, error)

	// GetLastPrice returns the last traded price for one FIGI.
	GetLastPrice(ctx context.Context, figi string) (float64, error)

	// OpenSandboxAccount opens a new paper-trading account and returns its ID.
	OpenSandboxAccount(ctx context.Context) (string, error)

	// SandboxPayIn deposits the given amount into a sandbox account and
	// returns the resulting balance.
	SandboxPayIn(ctx context.Context, accountID string, amount domain.Money) (domain.Money, error)

	// Close releases the underlying connection.
	Close() error
}
