// Package mockcatalog serves canned artist search and top-tracks responses in
// the Spotify Web API wire format, for offline development and client tests.
package mockcatalog
