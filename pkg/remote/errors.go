package remote

import "errors"

var (
	ErrLookup = errors.New("remote lookup failed")

	ErrFailedToParseRedisURL = errors.New("failed to parse redis connection string")
	ErrRedisNotReady         = errors.New("redis did not become ready within the given time period")

	ErrFailedToParsePostgresConfig = errors.New("failed to parse postgres config")
	ErrPostgresNotReady            = errors.New("failed to open postgres connection")
)

// Codes attached to records produced by failing remote rules.
const (
	CodeTaken    = 2001
	CodeNotFound = 2002
)
