// Package google handles OAuth2 authentication for the Google Calendar API.
//
// Tokens are cached in a JSON file between runs. Expired access tokens are
// refreshed transparently through the oauth2 token source and the refreshed
// token is written back to the cache, so the interactive authorization flow
// only has to run once.
package google
