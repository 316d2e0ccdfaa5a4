package domain

// State is the lifecycle flag carried by every product definition.
type State string

const (
	StateActive   State = "ACT"
	StateInactive State = "INA"
)

// IsValid reports whether s is one of the known lifecycle states.
func (s State) IsValid() bool {
	return s == StateActive || s == StateInactive
}
