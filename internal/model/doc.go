package model

// Package model defines the catalog records shown by the app: artists found by
// a search and an artist's top tracks. Records are plain values; their payload
// encoding lives in package parcel.
