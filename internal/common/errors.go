// Package common defines shared constants and sentinel errors used across
// the protocolo client components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Image pipeline errors.
	ErrDecode = errors.New("image decode failed")
	ErrRender = errors.New("render surface unavailable")

	// Remote operation errors.
	ErrUpload = errors.New("photo upload rejected")
	ErrCreate = errors.New("remote create rejected")

	// Local persisted state could not be parsed. The buffer discards the
	// offending key and continues empty rather than failing startup.
	ErrCorruptState = errors.New("corrupt persisted state")
)
