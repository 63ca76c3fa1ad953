// Package store defines the persistence interfaces and shared errors used
// by the service layer. Concrete implementations live under
// internal/platform (PostgreSQL) and internal/mocks (tests). All stores
// accept a context, return sentinel errors checkable with errors.Is, and
// expose WithTx for transactional composition.
package store
