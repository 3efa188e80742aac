// Package api is the console's client for the remote marketplace REST API.
//
// A Client is shared by the whole process. Each console session talks to the
// API through a Session bound to that session's credential slot: the bearer
// token is read from the slot on every request and the slot is cleared when
// the API answers 401.
package api
