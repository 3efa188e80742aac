// Package sqlite provides SQLite-backed console session persistence.
package sqlite
