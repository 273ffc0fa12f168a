// package models defines the data model for the movie catalog client.
//
// External resources (movies, watchlist entries) mirror the catalog API's
// JSON shapes; Principal mirrors the identity provider; Credential is the
// locally persisted session record.
package models
