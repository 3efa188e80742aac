// Package admin serves the marketplace moderation console.
//
// Operators sign in with staff credentials, browse shops, users and orders in
// paginated tables, inspect records in dialogs, and moderate shops or delete
// orders. Every mutation re-reads the affected page from the marketplace API;
// the console never treats its own copy as authoritative.
package admin
