// Package repository exposes one narrow repository per entity kind, all
// backed by the in-memory store. Handlers and services never touch the
// store directly, so swapping in a real persistence backend stays a
// repository-level change.
package repository

import "errors"

// ErrNoRecord is returned by point lookups that find nothing. Services
// translate it into the typed NotFound error.
var ErrNoRecord = errors.New("record not found")
