package argv

// Result holds the values parsed for one command of the grammar tree.
// A chain of Results mirrors exactly the single path through the
// command tree selected by subcommand words; sibling subcommands never
// appear together. A Result is produced fresh per Parse call and must
// be treated as read-only once returned.
type Result struct {
	// Occurrence counts, seeded at 0 for every declared flag option
	// so that lookups can tell "absent" apart from "never declared".
	flags map[string]int

	// Resolved text per single-value option or positional name. An
	// option that was never supplied and has no default is absent.
	values map[string]string

	// Ordered supplied texts per multi-value option or positional name.
	lists map[string][]string

	subName string
	sub     *Result

	// Words after the "--" terminator, verbatim and unparsed.
	// Only ever populated on the Result of the root Parse call.
	remaining []string
}

func newResult(c *Command) *Result {
	res := &Result{
		flags:  map[string]int{},
		values: map[string]string{},
		lists:  map[string][]string{},
	}

	for _, opt := range c.options {
		if !opt.TakesValue {
			res.flags[opt.Long] = 0
		}
	}

	return res
}

// Occurrences returns how many times the named flag option was given.
// The name must have been declared as a flag (non-value) option on the
// command this Result belongs to, or an unknown-argument error is
// returned.
func (r *Result) Occurrences(name string) (int, error) {
	count, known := r.flags[name]
	if !known {
		return 0, newErrorf(ErrUnknownArgument, "%s does not exist", name)
	}

	return count, nil
}

// Present reports whether the named flag option was given at least
// once. Like Occurrences, it fails if the name was never declared as a
// flag option.
func (r *Result) Present(name string) (bool, error) {
	count, err := r.Occurrences(name)

	return count > 0, err
}

// Value returns the resolved text of a single-value option (supplied or
// default) or positional. The second return is false when the name was
// never supplied and has no default.
func (r *Result) Value(name string) (string, bool) {
	value, set := r.values[name]

	return value, set
}

// Values returns the supplied texts of a multi-value option or
// positional, in the exact order given on the command line.
func (r *Result) Values(name string) []string {
	return r.lists[name]
}

// Subcommand returns the name of the selected subcommand and its
// Result, or an empty name and nil when none was selected.
func (r *Result) Subcommand() (string, *Result) {
	return r.subName, r.sub
}

// Remaining returns the words captured verbatim after the "--"
// terminator. It is only ever non-empty on the root Result.
func (r *Result) Remaining() []string {
	return r.remaining
}
