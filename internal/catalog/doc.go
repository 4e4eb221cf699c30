package catalog

// Package catalog talks to the Spotify Web API: artist search and an artist's
// top tracks for a market. Requests are rate limited on the client side and,
// when app credentials are configured, authorised with a client-credentials
// token.
