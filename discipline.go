package parcount

import "fmt"

// Discipline selects how workers synchronize their partial counts.
type Discipline uint8

const (
	// Private gives every worker its own result slot. No locking; the
	// slots are summed after the join barrier.
	Private Discipline = iota
	// Exclusive makes every worker hold the invocation-wide lock for its
	// whole scan. Worker bodies never overlap.
	Exclusive
	// Shared merges every worker's local count into one accumulator with
	// a load-then-store sequence that can lose updates under contention.
	Shared
)

var disciplineNames = [...]string{
	Private:   "winAPI",
	Exclusive: "std",
	Shared:    "atomic",
}

// String returns the command-line name of the discipline.
func (d Discipline) String() string {
	if int(d) < len(disciplineNames) {
		return disciplineNames[d]
	}
	return fmt.Sprintf("Discipline(%d)", uint8(d))
}

// ParseDiscipline maps a command-line name (winAPI, std, atomic) to its
// Discipline.
func ParseDiscipline(s string) (Discipline, error) {
	for d, name := range disciplineNames {
		if name == s {
			return Discipline(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want winAPI, std or atomic)", ErrUnknownDiscipline, s)
}

// Set implements flag.Value.
func (d *Discipline) Set(s string) error {
	v, err := ParseDiscipline(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Discipline) MarshalText() ([]byte, error) {
	if int(d) >= len(disciplineNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDiscipline, uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Discipline) UnmarshalText(b []byte) error {
	return d.Set(string(b))
}
