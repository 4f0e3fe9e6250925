// Package semantics provides the accessibility annotations the marquee
// attaches to its content groups. The looping illusion requires two
// replica copies of the content; this package carries the flags that
// keep assistive technology from announcing the same content three
// times.
package semantics

// Flag is a bitset of boolean semantic states.
type Flag uint64

const (
	// FlagHidden hides the node from assistive technology.
	FlagHidden Flag = 1 << iota
	// FlagFocusable marks the node as reachable by accessibility focus.
	FlagFocusable
)

// Has reports whether all bits in other are set.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// Set returns f with the bits in other set.
func (f Flag) Set(other Flag) Flag {
	return f | other
}

// Role defines the semantic role of a node.
type Role int

const (
	// RoleNone is the default role.
	RoleNone Role = iota
	// RoleGroup is a container of related content.
	RoleGroup
	// RolePresentation marks purely decorative content that carries no
	// meaning for assistive technology.
	RolePresentation
)

func (r Role) String() string {
	switch r {
	case RoleGroup:
		return "group"
	case RolePresentation:
		return "presentation"
	default:
		return "none"
	}
}

// Config describes the semantic properties of one node.
type Config struct {
	// Role defines the semantic role of the node.
	Role Role

	// Flags contains boolean state flags.
	Flags Flag

	// Label is the accessibility label, if any.
	Label string
}

// IsEmpty reports whether the configuration contains any semantic
// information.
func (c Config) IsEmpty() bool {
	return c.Role == RoleNone && c.Flags == 0 && c.Label == ""
}
