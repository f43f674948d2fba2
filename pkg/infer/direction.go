package infer

import (
	"fmt"
	"strings"
)

// Direction selects which rules take part in inference.
type Direction int

const (
	// Up only propagates types from the leaves toward the root.
	Up Direction = iota
	// Bidirectional additionally pushes types from arrays and concatenations
	// back into their arguments.
	Bidirectional
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Bidirectional:
		return "bidirectional"
	}

	return fmt.Sprintf("direction(%d)", int(d))
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "bidirectional", "bidi":
		return Bidirectional, nil
	}
	return Up, fmt.Errorf("unknown direction %q, expected up or bidirectional", s)
}

// Set implements flag.Value
func (d *Direction) Set(s string) error {
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	return d.Set(string(b))
}
