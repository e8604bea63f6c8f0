package mocks

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/store"
)

// MockTransactor implements store.Transactor by calling fn with a nil
// transaction. Mock stores ignore the transaction in WithTx.
type MockTransactor struct {
	Calls int
	Err   error
}

var _ store.Transactor = (*MockTransactor)(nil)

// WithinTx implements store.Transactor.
func (m *MockTransactor) WithinTx(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}
