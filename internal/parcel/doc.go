package parcel

// Package parcel implements the byte payload used to hand records between
// screens and to snapshot a screen's list so it survives the app being
// recreated. Strings are uvarint length-prefixed; an absent URI is written as
// the empty string.
