package dispatch

import (
	"context"

	"google.golang.org/grpc/status"

	"investbridge/internal/broker"
	"investbridge/internal/domain"
)

// getPortfolio assembles the portfolio of the token's first account:
// positions with a positive balance, each classified through the instrument
// lookup chain and valued at its last traded price. Average price, cost and
// P&L stay zero throughout; deriving a cost basis would require the
// operation history, which this operation does not fetch.
func (d *Dispatcher) getPortfolio(ctx context.Context, req Request) any {
	br, err := d.connect(ctx, req, req.UseSandbox)
	if err != nil {
		return Fail(err)
	}
	defer br.Close()

	accounts, err := br.GetAccounts(ctx)
	if err != nil {
		return Fail(err)
	}
	if len(accounts) == 0 {
		return PortfolioResponse{
			Success:   true,
			Accounts:  []domain.Account{},
			Portfolio: []domain.PortfolioItem{},
		}
	}

	// First account wins; there is no selection logic for multiple accounts.
	accountID := accounts[0].ID

	positions, err := br.GetPositions(ctx, accountID)
	if err != nil {
		return Fail(err)
	}

	items := make([]domain.PortfolioItem, 0, len(positions))
	var totalValue float64

	for _, pos := range positions {
		if pos.Balance <= 0 {
			continue
		}
		item := d.buildItem(ctx, br, pos)
		totalValue += item.CurrentValue
		items = append(items, item)
	}

	return PortfolioResponse{
		Success:    true,
		AccountID:  accountID,
		Portfolio:  items,
		TotalValue: totalValue,
	}
}

// buildItem assembles one portfolio item. Classification and pricing fail
// independently: a position that resolves to no instrument kind keeps its
// FIGI as ticker and type OTHER, and a failed price lookup values the item
// at zero without discarding it.
func (d *Dispatcher) buildItem(ctx context.Context, br broker.Broker, pos domain.Position) domain.PortfolioItem {
	item := domain.PortfolioItem{
		FIGI:     pos.FIGI,
		Ticker:   pos.FIGI,
		Name:     "Unknown",
		Type:     domain.InstrumentTypeOther,
		Quantity: float64(pos.Balance),
	}

	if in, kind, ok := d.classify(ctx, br, pos.FIGI); ok {
		item.Ticker = in.Ticker
		item.Name = in.Name
		item.Type = kind
	}

	price, err := br.GetLastPrice(ctx, pos.FIGI)
	if err != nil {
		d.log.Debug("last price unavailable", "figi", pos.FIGI, "code", status.Code(err))
		price = 0
	}
	item.CurrentPrice = price
	item.CurrentValue = item.Quantity * price

	return item
}

// classify resolves a FIGI through the fixed stock → bond → ETF lookup
// chain. The first lookup that answers with an instrument wins. A lookup
// error means "not this kind" and never aborts the item.
func (d *Dispatcher) classify(ctx context.Context, br broker.Broker, figi string) (domain.Instrument, domain.InstrumentType, bool) {
	lookups := []struct {
		kind domain.InstrumentType
		fn   func(context.Context, string) (*domain.Instrument, error)
	}{
		{domain.InstrumentTypeStock, br.ShareByFIGI},
		{domain.InstrumentTypeBond, br.BondByFIGI},
		{domain.InstrumentTypeETF, br.ETFByFIGI},
	}

	for _, l := range lookups {
		in, err := l.fn(ctx, figi)
		if err != nil {
			d.log.Debug("instrument lookup failed", "figi", figi, "kind", l.kind, "code", status.Code(err))
			continue
		}
		if in == nil {
			continue
		}
		return *in, l.kind, true
	}

	return domain.Instrument{}, domain.InstrumentTypeOther, false
}
