package broker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/russianinvestments/invest-api-go-sdk/investgo"

	"investbridge/internal/config"
	"investbridge/internal/domain"
)

// Compile-time interface check.
var _ Broker = (*TinkoffBroker)(nil)

// TinkoffBroker implements the Broker interface over the official Invest API
// Go SDK. The SDK binds its gRPC connection and context at construction, so
// the per-method contexts are not forwarded; the whole client lives for one
// process invocation anyway.
type TinkoffBroker struct {
	client      *investgo.Client
	users       *investgo.UsersServiceClient
	operations  *investgo.OperationsServiceClient
	instruments *investgo.InstrumentsServiceClient
	marketData  *investgo.MarketDataServiceClient
	sandbox     *investgo.SandboxServiceClient
	log         *slog.Logger
}

// DialTinkoff connects to the live or sandbox Invest API endpoint with the
// supplied token. SDK-level retries are disabled: retry policy belongs to
// the caller of this program, not to this bridge.
func DialTinkoff(ctx context.Context, cfg *config.Config, token string, useSandbox bool) (*TinkoffBroker, error) {
	endpoint := cfg.Invest.Endpoint
	if useSandbox {
		endpoint = cfg.Invest.SandboxEndpoint
	}

	conf := investgo.Config{
		EndPoint:        endpoint,
		Token:           token,
		AppName:         cfg.Invest.AppName,
		DisableAllRetry: true,
	}

	log := slog.Default().With("broker", "tinkoff", "endpoint", endpoint)

	client, err := investgo.NewClient(ctx, conf, sdkLogger{log: log})
	if err != nil {
		return nil, fmt.Errorf("dialing invest api %s: %w", endpoint, err)
	}

	return &TinkoffBroker{
		client:      client,
		users:       client.NewUsersServiceClient(),
		operations:  client.NewOperationsServiceClient(),
		instruments: client.NewInstrumentsServiceClient(),
		marketData:  client.NewMarketDataServiceClient(),
		sandbox:     client.NewSandboxServiceClient(),
		log:         log,
	}, nil
}

// Name returns "tinkoff".
func (b *TinkoffBroker) Name() string { return "tinkoff" }

// GetAccounts lists the accounts visible to the token.
func (b *TinkoffBroker) GetAccounts(_ context.Context) ([]domain.Account, error) {
	resp, err := b.users.GetAccounts(nil)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(resp.GetAccounts()))
	for _, acc := range resp.GetAccounts() {
		a := domain.Account{
			ID:     acc.GetId(),
			Type:   acc.GetType().String(),
			Name:   acc.GetName(),
			Status: acc.GetStatus().String(),
		}
		if opened := acc.GetOpenedDate(); opened != nil {
			a.OpenedDate = opened.AsTime().Format(time.RFC3339)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// GetPositions lists the security positions held in one account.
func (b *TinkoffBroker) GetPositions(_ context.Context, accountID string) ([]domain.Position, error) {
	resp, err := b.operations.GetPositions(accountID)
	if err != nil {
		return nil, err
	}

	positions := make([]domain.Position, 0, len(resp.GetSecurities()))
	for _, sec := range resp.GetSecurities() {
		positions = append(positions, domain.Position{
			FIGI:    sec.GetFigi(),
			Balance: sec.GetBalance(),
		})
	}
	return positions, nil
}

// ShareByFIGI resolves a FIGI as a stock.
func (b *TinkoffBroker) ShareByFIGI(_ context.Context, figi string) (*domain.Instrument, error) {
	resp, err := b.instruments.ShareByFigi(figi)
	if err != nil {
		return nil, err
	}
	share := resp.GetInstrument()
	if share == nil {
		return nil, nil
	}
	return &domain.Instrument{
		FIGI:     share.GetFigi(),
		Ticker:   share.GetTicker(),
		Name:     share.GetName(),
		Type:     string(domain.InstrumentTypeStock),
		Currency: share.GetCurrency(),
	}, nil
}

// BondByFIGI resolves a FIGI as a bond.
func (b *TinkoffBroker) BondByFIGI(_ context.Context, figi string) (*domain.Instrument, error) {
	resp, err := b.instruments.BondByFigi(figi)
	if err != nil {
		return nil, err
	}
	bond := resp.GetInstrument()
	if bond == nil {
		return nil, nil
	}
	return &domain.Instrument{
		FIGI:     bond.GetFigi(),
		Ticker:   bond.GetTicker(),
		Name:     bond.GetName(),
		Type:     string(domain.InstrumentTypeBond),
		Currency: bond.GetCurrency(),
	}, nil
}

// ETFByFIGI resolves a FIGI as an ETF.
func (b *TinkoffBroker) ETFByFIGI(_ context.Context, figi string) (*domain.Instrument, error) {
	resp, err := b.instruments.EtfByFigi(figi)
	if err != nil {
		return nil, err
	}
	etf := resp.GetInstrument()
	if etf == nil {
		return nil, nil
	}
	return &domain.Instrument{
		FIGI:     etf.GetFigi(),
		Ticker:   etf.GetTicker(),
		Name:     etf.GetName(),
		Type:     string(domain.InstrumentTypeETF),
		Currency: etf.GetCurrency(),
	}, nil
}

// FindInstruments searches instruments by free-text query. The wire type
// carries no currency, so the field stays empty.
func (b *TinkoffBroker) FindInstruments(_ context.Context, query string) ([]domain.Instrument, error) {
	resp, err := b.instruments.FindInstrument(query)
	if err != nil {
		return nil, err
	}

	instruments := make([]domain.Instrument, 0, len(resp.GetInstruments()))
	for _, in := range resp.GetInstruments() {
		instruments = append(instruments, domain.Instrument{
			FIGI:   in.GetFigi(),
			Ticker: in.GetTicker(),
			Name:   in.GetName(),
			Type:   in.GetInstrumentType(),
		})
	}
	return instruments, nil
}

// GetLastPrice returns the last traded price for one FIGI, or ErrNoPriceData
// when the remote side reports no price.
func (b *TinkoffBroker) GetLastPrice(_ context.Context, figi string) (float64, error) {
	resp, err := b.marketData.GetLastPrices([]string{figi})
	if err != nil {
		return 0, err
	}
	prices := resp.GetLastPrices()
	if len(prices) == 0 {
		return 0, ErrNoPriceData
	}
	quote := prices[0].GetPrice()
	return domain.QuotationToFloat(quote.GetUnits(), quote.GetNano()), nil
}

// OpenSandboxAccount opens a new paper-trading account.
func (b *TinkoffBroker) OpenSandboxAccount(_ context.Context) (string, error) {
	resp, err := b.sandbox.OpenSandboxAccount()
	if err != nil {
		return "", err
	}
	return resp.GetAccountId(), nil
}

// SandboxPayIn deposits the given amount into a sandbox account.
func (b *TinkoffBroker) SandboxPayIn(_ context.Context, accountID string, amount domain.Money) (domain.Money, error) {
	resp, err := b.sandbox.SandboxPayIn(&investgo.SandboxPayInRequest{
		AccountId: accountID,
		Currency:  amount.Currency,
		Unit:      amount.Units,
		Nano:      amount.Nano,
	})
	if err != nil {
		return domain.Money{}, err
	}

	balance := resp.GetBalance()
	return domain.Money{
		Units:    balance.GetUnits(),
		Nano:     balance.GetNano(),
		Currency: balance.GetCurrency(),
	}, nil
}

// Close stops the underlying SDK client and its gRPC connection.
func (b *TinkoffBroker) Close() error {
	return b.client.Stop()
}

// sdkLogger bridges the SDK's logger interface onto slog.
type sdkLogger struct {
	log *slog.Logger
}

func (l sdkLogger) Infof(template string, args ...any) {
	l.log.Info(fmt.Sprintf(template, args...))
}

func (l sdkLogger) Errorf(template string, args ...any) {
	l.log.Error(fmt.Sprintf(template, args...))
}

func (l sdkLogger) Fatalf(template string, args ...any) {
	l.log.Error(fmt.Sprintf(template, args...))
	os.Exit(1)
}
