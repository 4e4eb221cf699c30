// Package session keeps the transient state of the open screens across a
// process being stopped and recreated. State is a Bundle of encoded
// payloads saved to the app's private storage.
package session
