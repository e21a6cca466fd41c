package argv

import (
	"strings"
	"unicode/utf8"
)

// Option describes one named option of a command's grammar. Options are
// declared with their dash prefixes: Long must start with "--", and
// Short, when present, must be exactly a dash followed by one non-dash
// character. A value-taking option consumes the whole word following it
// on the command line; values are opaque text, never coerced.
//
// Supplying a default forces TakesValue. Multiple and a default are
// mutually exclusive and rejected at registration.
type Option struct {
	Long       string // Long name, with the "--" prefix
	Short      string // Optional short alias, like "-v"
	TakesValue bool   // Whether the option consumes the next word as its value
	Default    string // Default text for an omitted single-value option
	HasDefault bool   // Whether Default is meaningful
	Multiple   bool   // Whether the option may be given more than once
	Help       string // One-line description shown in the help text

	builtin bool // --help and --version short-circuit parsing
}

// optionKind is the derived classification of an option. The four kinds
// are mutually exclusive and cover every option.
type optionKind uint

const (
	singleFlag optionKind = iota // no value, at most once
	multiFlag                    // no value, counted
	singleValue                  // one value, at most once
	multiValue                   // ordered list of values
)

func (o *Option) kind() optionKind {
	switch {
	case o.TakesValue && o.Multiple:
		return multiValue
	case o.TakesValue:
		return singleValue
	case o.Multiple:
		return multiFlag
	default:
		return singleFlag
	}
}

// validate checks the descriptor's self-consistency. It runs once, at
// registration time, and is never re-checked during parsing.
func (o *Option) validate() error {
	if !strings.HasPrefix(o.Long, longPrefix) || len(o.Long) == len(longPrefix) {
		return newErrorf(ErrConfig, "long name '%s' must start with '%s'", o.Long, longPrefix)
	}

	if o.Short != "" && !validShort(o.Short) {
		return newErrorf(ErrConfig, "short name '%s' must be a dash followed by one character", o.Short)
	}

	if o.HasDefault && o.Multiple {
		return newErrorf(ErrConfig, "option '%s' cannot be multiple and have a default", o.Long)
	}

	return nil
}

// validShort reports whether short is a dash followed by exactly one
// non-dash character.
func validShort(short string) bool {
	if utf8.RuneCountInString(short) != 2 || short[0] != '-' {
		return false
	}

	return !strings.HasPrefix(short[1:], "-")
}

// shortRune returns the alias character of the short name. Only valid
// on options whose Short passed validation.
func (o *Option) shortRune() rune {
	char, _ := utf8.DecodeRuneInString(o.Short[1:])

	return char
}

// label is the option's name column in the help text, with the short
// alias shown as a "-x, " prefix when present.
func (o *Option) label() string {
	if o.Short != "" {
		return o.Short + ", " + o.Long
	}

	return o.Long
}
