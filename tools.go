//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: go:generate lines in *_test.go regenerate mocks
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration authoring;
//   cmd/migrate applies the embedded set
