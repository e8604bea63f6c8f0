// Package auth issues and verifies credential tokens, hashes passwords and
// decides which principal may act on which account or profile.
package auth
