// Package storage defines persistence contracts for console sessions.
//
// A console session owns exactly one credential slot: the marketplace bearer
// token issued at login. Handlers and the API client reach that token only
// through Slot, never through the store directly.
package storage
