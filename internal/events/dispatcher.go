package events

import (
	"context"
	"errors"
)

// Handler reacts to ledger mutations.
type Handler interface {
	HandleTransactionMutated(ctx context.Context, event TransactionMutated) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event TransactionMutated) error

func (f HandlerFunc) HandleTransactionMutated(ctx context.Context, event TransactionMutated) error {
	return f(ctx, event)
}

// Publisher announces ledger mutations.
type Publisher interface {
	Publish(ctx context.Context, event TransactionMutated) error
}

// Dispatcher delivers each event to every registered handler on the caller's
// goroutine. All handlers run even when one fails.
type Dispatcher struct {
	handlers []Handler
}

var _ Publisher = (*Dispatcher)(nil)

func NewDispatcher(handlers ...Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

func (d *Dispatcher) Subscribe(handler Handler) {
	d.handlers = append(d.handlers, handler)
}

func (d *Dispatcher) Publish(ctx context.Context, event TransactionMutated) error {
	if err := event.Validate(); err != nil {
		return err
	}
	var errs []error
	for _, handler := range d.handlers {
		if err := handler.HandleTransactionMutated(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
