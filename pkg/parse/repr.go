package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Repr returns the canonical source text of a node. Parsing the result yields
// a node equal to n apart from source ranges.
func Repr(n Node) string {
	var sb strings.Builder
	writeRepr(&sb, n)
	return sb.String()
}

func writeRepr(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Atom:
		sb.WriteString(n.Name)
	case *UInt:
		sb.WriteString(strconv.FormatUint(uint64(n.Value), 10))
	case *Float:
		sb.WriteString(FormatFloat(n.Value))
	case *Color:
		sb.WriteString(FormatColor(n.Value))
	case *List:
		sb.WriteByte('(')
		for i, elem := range n.Elems {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeRepr(sb, elem)
		}
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<unknown node %T>", n)
	}
}

// FormatFloat formats a float so that it is parsed back as a float and never
// as a uint.
func FormatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// FormatColor formats RGBA channels in [0, 1] as a color literal.
func FormatColor(c [4]float32) string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, ch := range c {
		b := math.Round(float64(ch) * 255)
		b = math.Max(0, math.Min(255, b))
		fmt.Fprintf(&sb, "%02X", int(b))
	}
	return sb.String()
}
