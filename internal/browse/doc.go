// Package browse runs the catalog fetches behind the search and tracks
// screens. Each flow issues one request per submission on its own goroutine
// and hands the result back to the UI through a Poster; a per-screen
// generation counter drops results that were superseded or whose screen was
// closed.
package browse
