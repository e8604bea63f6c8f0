// Package service contains the application use cases: signup, login, account
// and profile management and catalog reads. Services fetch what an
// authorization decision needs, ask the ownership policy in internal/service/auth
// and only then touch the store. Multi-step writes run inside a store.Transactor.
package service
