// Package postgres provides PostgreSQL implementations of the store
// interfaces. It handles query execution and the mapping between domain
// entities, table rows and PostgreSQL error codes. Schema migrations live in
// the migrations subpackage.
package postgres
