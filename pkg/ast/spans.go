package ast

import "fmt"

// SetSpan annotates the node with the provided span.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

// ZeroSpan returns an empty span value.
func ZeroSpan() Span {
	return Span{}
}

// IsZero reports whether the span carries no location.
func (s Span) IsZero() bool {
	return s == Span{}
}

// String renders the start of the span as line:column.
func (s Span) String() string {
	if s.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
}

// ShiftLines moves a span up by delta lines; used when a fragment was parsed inside
// synthetic wrapper text. Positions never move above line 1.
func (s Span) ShiftLines(delta int) Span {
	if s.IsZero() || delta == 0 {
		return s
	}
	shift := func(p Position) Position {
		p.Line -= delta
		if p.Line < 1 {
			p.Line = 1
		}
		return p
	}
	return Span{Start: shift(s.Start), End: shift(s.End)}
}
