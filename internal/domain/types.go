// Package domain defines the core data types shared across investbridge:
// brokerage accounts, positions, instruments, portfolio items, and the
// units/nano money encoding used by the Invest API.
package domain

// InstrumentType classifies an instrument for portfolio reporting.
type InstrumentType string

const (
	InstrumentTypeStock InstrumentType = "STOCK"
	InstrumentTypeBond  InstrumentType = "BOND"
	InstrumentTypeETF   InstrumentType = "ETF"
	InstrumentTypeOther InstrumentType = "OTHER"
)

// Account is a brokerage account as reported by the remote service. Enum
// fields arrive stringified; OpenedDate is RFC 3339 or empty when the remote
// side did not report one.
type Account struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	OpenedDate string `json:"opened_date,omitempty"`
}

// Position is a held quantity of one instrument within one account. Balance
// is the raw held quantity; non-positive balances are not reportable.
type Position struct {
	FIGI    string
	Balance int64
}

// Instrument is a flat instrument record mirroring the remote API shape.
// Currency may be empty: the free-text search endpoint does not report one.
type Instrument struct {
	FIGI     string `json:"figi"`
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
}

// PortfolioItem is one reported position with its classification and
// valuation. AveragePrice, TotalCost, PnL and PnLPercent are always zero:
// cost basis is not derivable without querying operation history, which the
// portfolio operation does not do.
type PortfolioItem struct {
	FIGI         string         `json:"figi"`
	Ticker       string         `json:"ticker"`
	Name         string         `json:"name"`
	Type         InstrumentType `json:"type"`
	Quantity     float64        `json:"quantity"`
	AveragePrice float64        `json:"average_price"`
	CurrentPrice float64        `json:"current_price"`
	TotalCost    float64        `json:"total_cost"`
	CurrentValue float64        `json:"current_value"`
	PnL          float64        `json:"pnl"`
	PnLPercent   float64        `json:"pnl_percent"`
}

// Money is an amount in the API's units+nano encoding. Nano is the number of
// 1e-9 fractions and carries the same sign as Units.
type Money struct {
	Units    int64  `json:"units"`
	Nano     int32  `json:"nano"`
	Currency string `json:"currency"`
}
