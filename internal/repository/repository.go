package repository

// Package repository contains data access abstractions for the revision
// registry. Implementations live in subpackages (e.g. postgres).

import "errors"

// ErrDuplicate is returned when an insert collides with an existing row on a
// unique column (the guide content hash).
var ErrDuplicate = errors.New("duplicate record")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
