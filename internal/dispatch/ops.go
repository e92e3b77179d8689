package dispatch

import (
	"context"
	"errors"

	"investbridge/internal/broker"
	"investbridge/internal/domain"
)

// getAccounts lists the accounts visible to the token.
func (d *Dispatcher) getAccounts(ctx context.Context, req Request) any {
	br, err := d.connect(ctx, req, req.UseSandbox)
	if err != nil {
		return AccountsResponse{Accounts: []domain.Account{}, Error: err.Error()}
	}
	defer br.Close()

	accounts, err := br.GetAccounts(ctx)
	if err != nil {
		return AccountsResponse{Accounts: []domain.Account{}, Error: err.Error()}
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return AccountsResponse{Success: true, Accounts: accounts}
}

// searchInstruments resolves a free-text query against the instrument
// directory.
func (d *Dispatcher) searchInstruments(ctx context.Context, req Request) any {
	br, err := d.connect(ctx, req, req.UseSandbox)
	if err != nil {
		return InstrumentsResponse{Instruments: []domain.Instrument{}, Error: err.Error()}
	}
	defer br.Close()

	instruments, err := br.FindInstruments(ctx, req.Query)
	if err != nil {
		return InstrumentsResponse{Instruments: []domain.Instrument{}, Error: err.Error()}
	}
	if instruments == nil {
		instruments = []domain.Instrument{}
	}
	return InstrumentsResponse{Success: true, Instruments: instruments}
}

// getCurrentPrice fetches the last traded price for one FIGI. The last-price
// endpoint returns a bare quotation, so the currency is reported as RUB.
func (d *Dispatcher) getCurrentPrice(ctx context.Context, req Request) any {
	br, err := d.connect(ctx, req, req.UseSandbox)
	if err != nil {
		return Fail(err)
	}
	defer br.Close()

	price, err := br.GetLastPrice(ctx, req.FIGI)
	if errors.Is(err, broker.ErrNoPriceData) {
		return Failure{Error: "No price data"}
	}
	if err != nil {
		return Fail(err)
	}
	return PriceResponse{Success: true, Price: price, Currency: "RUB"}
}

// createDemoAccount opens a sandbox account and tops it up with the
// configured amount. This command always targets the sandbox endpoint,
// whatever the request says.
func (d *Dispatcher) createDemoAccount(ctx context.Context, req Request) any {
	br, err := d.connect(ctx, req, true)
	if err != nil {
		return Fail(err)
	}
	defer br.Close()

	accountID, err := br.OpenSandboxAccount(ctx)
	if err != nil {
		return Fail(err)
	}

	balance, err := br.SandboxPayIn(ctx, accountID, domain.Money{
		Units:    d.cfg.Sandbox.PayInUnits,
		Currency: d.cfg.Sandbox.PayInCurrency,
	})
	if err != nil {
		return Fail(err)
	}

	return DemoAccountResponse{Success: true, AccountID: accountID, Balance: balance}
}
