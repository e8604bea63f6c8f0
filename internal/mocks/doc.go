// Package mocks provides in-memory and function-field test doubles for the
// store interfaces and auth services. The in-memory stores keep enough state
// to drive end-to-end handler tests without a database.
package mocks
