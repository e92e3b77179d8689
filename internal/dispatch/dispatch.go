// Package dispatch maps command names onto brokerage operations. Every
// operation dials one broker connection, performs its remote calls, and
// converts any failure into the uniform {success:false, error} shape; a
// failed operation never crashes the process.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"investbridge/internal/broker"
	"investbridge/internal/config"
)

// Request is the JSON document read from stdin. Unused fields are simply
// zero for commands that do not need them.
type Request struct {
	Token      string `json:"token"`
	UseSandbox bool   `json:"use_sandbox"`
	Query      string `json:"query"`
	FIGI       string `json:"figi"`
}

// ParseRequest decodes the raw stdin contents. Empty or malformed input
// yields a zero request: field validation happens remotely, and a garbled
// body must still produce a well-formed JSON failure, not a crash.
func ParseRequest(raw []byte) Request {
	var req Request
	if len(raw) == 0 {
		return req
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return Request{}
	}
	return req
}

// DialFunc opens a broker connection for one operation.
type DialFunc func(ctx context.Context, cfg *config.Config, token string, useSandbox bool) (broker.Broker, error)

// Dispatcher resolves command names to operations.
type Dispatcher struct {
	cfg      *config.Config
	dial     DialFunc
	log      *slog.Logger
	handlers map[string]func(ctx context.Context, req Request) any
}

// New creates a Dispatcher that opens broker connections through dial.
func New(cfg *config.Config, dial DialFunc) *Dispatcher {
	d := &Dispatcher{
		cfg:  cfg,
		dial: dial,
		log:  slog.Default().With("component", "dispatch"),
	}
	d.handlers = map[string]func(ctx context.Context, req Request) any{
		"get_portfolio":       d.getPortfolio,
		"get_accounts":        d.getAccounts,
		"search_instruments":  d.searchInstruments,
		"create_demo_account": d.createDemoAccount,
		"get_current_price":   d.getCurrentPrice,
	}
	return d
}

// Dispatch runs the named command and returns its response value. Unknown
// commands fail without touching the remote service.
func (d *Dispatcher) Dispatch(ctx context.Context, command string, req Request) any {
	h, ok := d.handlers[command]
	if !ok {
		return Failure{Error: fmt.Sprintf("Unknown command: %s", command)}
	}
	return h(ctx, req)
}

// connect dials a broker for one operation. The returned broker must be
// closed by the operation, error paths included.
func (d *Dispatcher) connect(ctx context.Context, req Request, useSandbox bool) (broker.Broker, error) {
	br, err := d.dial(ctx, d.cfg, req.Token, useSandbox)
	if err != nil {
		return nil, err
	}
	d.log.Debug("connected", "broker", br.Name())
	return br, nil
}
