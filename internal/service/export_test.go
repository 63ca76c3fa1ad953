package service

import (
	"context"

	"github.com/tobin/ripple-api/internal/store"
)

// SetRunTx exposes the runTx seam to tests in the external test package.
func (s *UserServiceImpl) SetRunTx(fn func(ctx context.Context, fn store.TxFn) error) {
	s.runTx = fn
}

// RunTx exposes the wired transaction runner to tests in the external
// test package.
func (s *UserServiceImpl) RunTx() func(ctx context.Context, fn store.TxFn) error {
	return s.runTx
}
