// Package scene contains the values produced by evaluating scene
// descriptions.
//
// Every value implements [Value]. The Repr of a value is source text that
// evaluates back to an equal value.
package scene

import (
	"strconv"
	"strings"

	"src.tvk.sh/pkg/parse"
)

// Value is a value produced by evaluation.
type Value interface {
	// Kind returns the name of the kind of the value, as used in error
	// messages.
	Kind() string
	// Repr returns source text that evaluates to the value.
	Repr() string
}

// Float is a floating-point scalar.
type Float float32

// UInt is an unsigned integer scalar.
type UInt uint32

func (Float) Kind() string { return "float" }
func (UInt) Kind() string  { return "uint" }

func (f Float) Repr() string { return parse.FormatFloat(float32(f)) }
func (u UInt) Repr() string  { return strconv.FormatUint(uint64(u), 10) }

// Position is a point in 3D space. Camera centers and up vectors are also
// positions.
type Position [3]float32

func (Position) Kind() string { return "position" }

func (p Position) Repr() string { return p.tagged("position") }

// Returns the tagged triple form, e.g. (up (x 0.0) (y 1.0) (z 0.0)).
func (p Position) tagged(head string) string {
	return "(" + head + " (x " + fmtFloat(p[0]) + ") (y " + fmtFloat(p[1]) +
		") (z " + fmtFloat(p[2]) + "))"
}

// Vec3 is a generic 3-component vector, used for translations, scales and
// rotation axes.
type Vec3 [3]float32

func (Vec3) Kind() string { return "vec3" }

func (v Vec3) Repr() string {
	return "(vec3 (" + joinFloats(v[:]) + "))"
}

// Rotate is a rotation by Angle radians around Axis.
type Rotate struct {
	Angle float32
	Axis  Vec3
}

func (Rotate) Kind() string { return "rotate" }

func (r Rotate) Repr() string {
	return "(rotate " + fmtFloat(r.Angle) + " " + r.Axis.Repr() + ")"
}

// Color is an RGBA color with channels in [0, 1].
type Color [4]float32

func (Color) Kind() string { return "color" }

func (c Color) Repr() string { return "(color " + parse.FormatColor(c) + ")" }

func fmtFloat(f float32) string { return parse.FormatFloat(f) }

func joinFloats(fs []float32) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = fmtFloat(f)
	}
	return strings.Join(strs, " ")
}
