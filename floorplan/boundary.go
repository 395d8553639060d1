package floorplan

import (
	"fmt"
	"strings"
)

// Boundary decides how cells beyond the grid edge are treated during classification
type Boundary int

const (
	// BoundaryWall treats everything past the edge as wall, so border walls show no outer face
	BoundaryWall Boundary = iota
	// BoundaryOpen treats everything past the edge as open space
	BoundaryOpen
	// BoundaryWrap wraps columns around (tunnel rows); past the top and bottom edge is wall
	BoundaryWrap
)

var boundaryNames = [...]string{"wall", "open", "wrap"}

func (b Boundary) String() string {
	if b >= 0 && int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// Validate reports an unknown policy
func (b Boundary) Validate() error {
	if b < BoundaryWall || b > BoundaryWrap {
		return fmt.Errorf("%w: %d", ErrInvalidBoundary, int(b))
	}
	return nil
}

// Next cycles through the policies
func (b Boundary) Next() Boundary {
	return (b + 1) % Boundary(len(boundaryNames))
}

func (b Boundary) outsideIsWall() bool {
	return b != BoundaryOpen
}

// ParseBoundary converts a policy name ("wall", "open", "wrap") to a Boundary.
// The empty string selects BoundaryWall.
func ParseBoundary(s string) (Boundary, error) {
	if s == "" {
		return BoundaryWall, nil
	}
	for i, name := range boundaryNames {
		if strings.EqualFold(s, name) {
			return Boundary(i), nil
		}
	}
	return BoundaryWall, fmt.Errorf("%w: %q", ErrInvalidBoundary, s)
}

// MarshalText implements encoding.TextMarshaler
func (b Boundary) MarshalText() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Boundary) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
