// Package session implements the admin session lifecycle: a single
// session record persisted under a fixed key in the shared key-value
// store, created by login, renewed by extension, and removed by logout
// or lazy expiry on read.
//
// Credentials are compared as plain strings against one configured
// identity. There is no hashing, rate limiting, or lockout; the admin
// surface inherits whatever protections sit in front of the gateway.
package session

import "time"

// Record is the persisted session, JSON-encoded under the fixed store
// key. Timestamps are epoch milliseconds; the layout matches the records
// the web client already writes, so both sides stay interoperable.
type Record struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	LoginTime       int64 `json:"loginTime"`
	ExpiresAt       int64 `json:"expiresAt"`
}

// Expired reports whether the record's expiry has been reached. A record
// is dead at the exact expiry instant, not one tick after.
func (r Record) Expired(now time.Time) bool {
	return now.UnixMilli() >= r.ExpiresAt
}
