// Package marketplace defines the records the console mirrors from the remote
// marketplace API: the signed-in admin, shops, users, and orders.
//
// The console never owns these records. Anything derived here (shop status,
// role badges, user filtering) is a pure function of the fields the API
// returned.
package marketplace
