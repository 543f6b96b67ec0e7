// Package common defines shared constants and sentinel errors used across
// the layers of viewtube. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Token verification errors, in order of detection.
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")

	// Session rotation errors. A stale refresh token means the presented
	// value no longer matches the authorized slot: either it was already
	// rotated or it was forged with a leaked secret. The two cases must not
	// be distinguishable to the caller.
	ErrRefreshInvalid = errors.New("invalid refresh token")
	ErrRefreshStale   = errors.New("stale or reused refresh token")
	ErrUnknownSubject = errors.New("unknown subject")

	// Issuance errors.
	ErrPersistence = errors.New("persistence failed")
)
