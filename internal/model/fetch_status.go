package model

// FetchStatus represents the state of a screen's most recent catalog fetch
type FetchStatus string

const (
	// FetchStatusIdle means nothing has been requested yet
	FetchStatusIdle FetchStatus = "Idle"

	// FetchStatusLoading means a request is in flight
	FetchStatusLoading FetchStatus = "Loading"

	// FetchStatusLoaded means the last request returned results
	FetchStatusLoaded FetchStatus = "Loaded"

	// FetchStatusEmpty means the last request returned no results
	FetchStatusEmpty FetchStatus = "Empty"

	// FetchStatusError means the last request failed
	FetchStatusError FetchStatus = "Error"

	// FetchStatusClosed means the owning screen is gone
	FetchStatusClosed FetchStatus = "Closed"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true while a request is in flight
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusLoading
}

// IsFinished returns true if the last request settled (loaded, empty, or error)
func (fs FetchStatus) IsFinished() bool {
	return fs == FetchStatusLoaded || fs == FetchStatusEmpty || fs == FetchStatusError
}
