package dispatch

import "investbridge/internal/domain"

// Failure is the uniform error shape shared by all operations.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Fail wraps a remote-call error into the uniform failure shape.
func Fail(err error) Failure {
	return Failure{Error: err.Error()}
}

// AccountsResponse answers get_accounts. On failure the accounts list is
// present and empty, matching the wire contract of the original service.
type AccountsResponse struct {
	Success  bool             `json:"success"`
	Accounts []domain.Account `json:"accounts"`
	Error    string           `json:"error,omitempty"`
}

// InstrumentsResponse answers search_instruments; like get_accounts, the
// list is present and empty on failure.
type InstrumentsResponse struct {
	Success     bool                `json:"success"`
	Instruments []domain.Instrument `json:"instruments"`
	Error       string              `json:"error,omitempty"`
}

// PortfolioResponse answers get_portfolio. AccountID is absent on the
// zero-accounts path, which instead carries an empty accounts list; totals
// beyond TotalValue are always zero (no cost basis without operation
// history).
type PortfolioResponse struct {
	Success         bool                   `json:"success"`
	AccountID       string                 `json:"account_id,omitempty"`
	Accounts        []domain.Account       `json:"accounts,omitzero"`
	Portfolio       []domain.PortfolioItem `json:"portfolio"`
	TotalValue      float64                `json:"total_value"`
	TotalCost       float64                `json:"total_cost"`
	TotalPnL        float64                `json:"total_pnl"`
	TotalPnLPercent float64                `json:"total_pnl_percent"`
}

// PriceResponse answers get_current_price.
type PriceResponse struct {
	Success  bool    `json:"success"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// DemoAccountResponse answers create_demo_account with the opened account
// and its topped-up balance.
type DemoAccountResponse struct {
	Success   bool         `json:"success"`
	AccountID string       `json:"account_id"`
	Balance   domain.Money `json:"balance"`
}
