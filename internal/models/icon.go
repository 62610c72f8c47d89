package models

import "fmt"

// IconDocument is a complete SVG document held in memory
type IconDocument string

// String returns the document markup
func (d IconDocument) String() string {
	return string(d)
}

// Bytes returns the document markup as bytes
func (d IconDocument) Bytes() []byte {
	return []byte(d)
}

// Point is a coordinate in the logo frame, whose origin is the canvas center
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String formats the point the way SVG point lists do
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Within reports whether the point lies inside a square of the given half-extent
func (p Point) Within(half int) bool {
	return p.X >= -half && p.X <= half && p.Y >= -half && p.Y <= half
}

// AdvisoryMessageList is the ordered set of follow-up hints printed after generation
type AdvisoryMessageList []string

// Lines returns a copy of the messages so callers cannot alter the fixed list
func (l AdvisoryMessageList) Lines() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}
