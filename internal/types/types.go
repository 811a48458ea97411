// Package types holds the shared data structures used across the
// application. Handlers, storage, and middleware all import types, so
// keeping them in one leaf package prevents import cycles.
package types

// Student is a persisted student record. It is only ever built from
// rows already in the store, never decoded from a request body.
type Student struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age"`
	Course string `json:"course"`
}

// StudentInput is the write shape accepted by create and update
// requests. All four fields are required; the validate:"..." tags are
// checked by go-playground/validator before any store access.
type StudentInput struct {
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required"`
	Age    int    `json:"age"    validate:"required"`
	Course string `json:"course" validate:"required"`
}
