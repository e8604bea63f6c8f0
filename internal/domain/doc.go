// Package domain contains the core business entities of the catalog: users,
// the profiles they own and catalog items. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
