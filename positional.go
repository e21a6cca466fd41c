package argv

// Positional describes one position-based grammar element, consumed
// after options in declaration order. At most one positional per
// command may be Multiple, and it must be the last one registered: it
// absorbs every structured word remaining at that point, and requires
// at least one.
type Positional struct {
	Name     string // Name used in the help text and for Result lookups
	Multiple bool   // Whether this slot absorbs all remaining words
	Help     string // One-line description shown in the help text
}

func (p *Positional) validate() error {
	if p.Name == "" {
		return newError(ErrConfig, "positional argument must have a name")
	}

	return nil
}
