// Package errs declares types for errors that may occur when evaluating scene
// descriptions.
//
// The messages of these errors are used as the messages of evaluation
// diagnostics.
package errs

import (
	"fmt"
	"strings"
)

// ArityMismatch encodes an error where a form has the wrong number of
// arguments.
type ArityMismatch struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

func (e ArityMismatch) Error() string {
	switch {
	case e.ValidHigh == e.ValidLow:
		return fmt.Sprintf("arity mismatch: %v must be %s, but is %s",
			e.What, pluralize(e.ValidLow, "value"), pluralize(e.Actual, "value"))
	case e.ValidHigh == -1:
		return fmt.Sprintf("arity mismatch: %v must be %v or more values, but is %s",
			e.What, e.ValidLow, pluralize(e.Actual, "value"))
	default:
		return fmt.Sprintf("arity mismatch: %v must be %v to %v values, but is %s",
			e.What, e.ValidLow, e.ValidHigh, pluralize(e.Actual, "value"))
	}
}

// WrongType encodes an error where a value has an unexpected kind.
type WrongType struct {
	What   string
	Valid  []string
	Actual string
}

func (e WrongType) Error() string {
	return fmt.Sprintf("wrong type: %v must be %s, but is %v",
		e.What, alternatives(e.Valid), e.Actual)
}

// BadValue encodes an error where a value does not satisfy some requirement.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

func (e BadValue) Error() string {
	return fmt.Sprintf("bad value: %v must be %v, but is %v", e.What, e.Valid, e.Actual)
}

// NoValue encodes an error where an expression that must produce a value
// produced none.
type NoValue struct {
	What string
}

func (e NoValue) Error() string {
	return fmt.Sprintf("no value: %v produced no value", e.What)
}

// Unbound encodes an error where an identifier has no binding.
type Unbound struct {
	Name string
}

func (e Unbound) Error() string {
	return "unbound identifier: " + e.Name
}

// NotHomogeneous encodes an error where the elements of a buffer have
// different kinds.
type NotHomogeneous struct {
	What   string
	First  string
	Actual string
}

func (e NotHomogeneous) Error() string {
	return fmt.Sprintf("not homogeneous: %v must all be %v, but one is %v",
		e.What, e.First, e.Actual)
}

// UnknownForm encodes an error where a list does not start with a form
// keyword.
type UnknownForm struct {
	Head string
}

func (e UnknownForm) Error() string {
	return "unknown form: " + e.Head
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func alternatives(opts []string) string {
	switch len(opts) {
	case 0:
		return "nothing"
	case 1:
		return opts[0]
	default:
		return strings.Join(opts[:len(opts)-1], ", ") + " or " + opts[len(opts)-1]
	}
}
