// Package session owns the console's authentication state: one credential
// slot and one cached admin identity per console session.
package session
