// Package argv implements a recursive command-line argument parser:
// a grammar of options, positionals and nested subcommands is declared
// on a tree of commands, and the root command's Parse call validates
// and decomposes an argument vector into a chain of Results, or fails
// with a precise diagnostic.
package argv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okapi-cli/argv/internal/cursor"
)

const (
	// longPrefix marks a word as a long option name.
	longPrefix = "--"

	// terminator ends structured parsing at the root call: every word
	// after it is returned verbatim in the root Result.
	terminator = "--"

	helpName    = "--help"
	versionName = "--version"
)

// Command is one node of the grammar tree. A command owns its options,
// its positionals or its subcommands (never both), and a non-owning
// link to its parent used only to reconstruct the usage prefix. The
// tree is built once through the registration methods and is read-only
// during parsing.
type Command struct {
	name    string
	help    string
	version string

	parent *Command // non-owning back-reference, nil for the root

	options     []*Option
	longNames   map[string]*Option
	shortNames  map[rune]*Option
	positionals []*Positional
	commands    []*Command

	out io.Writer // sink for the built-ins' help/version output
}

//
// Registration --------------------------------------------------------------- //
//

// New returns a fresh root command. The built-in --help/-h option is
// registered immediately, and --version as well when version is
// non-empty, so that both take part in ordinary option lookup before
// any user-defined option.
func New(name, help, version string) *Command {
	cmd := &Command{
		name:       name,
		help:       help,
		version:    version,
		longNames:  map[string]*Option{},
		shortNames: map[rune]*Option{},
		out:        os.Stdout,
	}

	cmd.install(&Option{
		Long:    helpName,
		Short:   "-h",
		Help:    "show this help message",
		builtin: true,
	})

	if version != "" {
		cmd.install(&Option{
			Long:    versionName,
			Help:    "show version information",
			builtin: true,
		})
	}

	return cmd
}

// AddOption registers an option on the command. The descriptor is
// validated for self-consistency, and the registration fails once any
// positional or subcommand has been registered: options always come
// first on a command.
func (c *Command) AddOption(opt Option) error {
	if len(c.positionals) > 0 || len(c.commands) > 0 {
		return newErrorf(ErrConfig,
			"cannot register option '%s' after a positional or subcommand", opt.Long)
	}

	if err := opt.validate(); err != nil {
		return err
	}

	// A default only makes sense for an option that takes a value.
	if opt.HasDefault {
		opt.TakesValue = true
	}

	if _, exists := c.longNames[opt.Long]; exists {
		return newErrorf(ErrConfig, "option '%s' is already registered", opt.Long)
	}

	if opt.Short != "" {
		if _, exists := c.shortNames[opt.shortRune()]; exists {
			return newErrorf(ErrConfig, "short name '%s' is already registered", opt.Short)
		}
	}

	c.install(&opt)

	return nil
}

// AddPositional registers a positional slot on the command. Positionals
// are mutually exclusive with subcommands, and a Multiple positional
// must be the last one registered.
func (c *Command) AddPositional(arg Positional) error {
	if len(c.commands) > 0 {
		return newErrorf(ErrConfig,
			"command '%s' cannot have both positionals and subcommands", c.name)
	}

	if err := arg.validate(); err != nil {
		return err
	}

	if last := len(c.positionals) - 1; last >= 0 && c.positionals[last].Multiple {
		return newErrorf(ErrConfig,
			"positional '%s' cannot follow the multiple positional '%s'",
			arg.Name, c.positionals[last].Name)
	}

	for _, prev := range c.positionals {
		if prev.Name == arg.Name {
			return newErrorf(ErrConfig, "positional '%s' is already registered", arg.Name)
		}
	}

	c.positionals = append(c.positionals, &arg)

	return nil
}

// AddCommand registers a subcommand and returns it for further grammar
// registration. Subcommands are mutually exclusive with positionals on
// the same command. The child gets its own --help/-h, and --version
// when version is non-empty.
func (c *Command) AddCommand(name, help, version string) (*Command, error) {
	if len(c.positionals) > 0 {
		return nil, newErrorf(ErrConfig,
			"command '%s' cannot have both positionals and subcommands", c.name)
	}

	if name == "" {
		return nil, newError(ErrConfig, "subcommand must have a name")
	}

	if c.find(name) != nil {
		return nil, newErrorf(ErrConfig, "subcommand '%s' is already registered", name)
	}

	sub := New(name, help, version)
	sub.parent = c
	sub.out = c.out

	c.commands = append(c.commands, sub)

	return sub, nil
}

// SetOutput redirects the help/version output of the command and of
// every subcommand registered so far. The default sink is os.Stdout.
func (c *Command) SetOutput(out io.Writer) {
	c.out = out

	for _, sub := range c.commands {
		sub.SetOutput(out)
	}
}

// install indexes an already validated option. Built-ins take this path
// directly since they are registered before any gate can apply.
func (c *Command) install(opt *Option) {
	c.options = append(c.options, opt)
	c.longNames[opt.Long] = opt

	if opt.Short != "" {
		c.shortNames[opt.shortRune()] = opt
	}
}

// find locates the subcommand with the given name, or returns nil.
func (c *Command) find(name string) *Command {
	for _, sub := range c.commands {
		if sub.name == name {
			return sub
		}
	}

	return nil
}

//
// Parsing -------------------------------------------------------------------- //
//

// Parse matches args against the command's grammar and returns the
// chain of Results for the selected path through the tree. The word at
// args[0] is the program's own name and is never interpreted.
//
// Parse is the root entry point: after the recursive match completes,
// a leftover "--" terminator moves every following word, verbatim, into
// the root Result's remaining list, and any other leftover word is an
// unused-argument error. A returned ErrTerminated means a built-in
// option ran and the caller should exit cleanly without a Result.
func (c *Command) Parse(args []string) (*Result, error) {
	cur := cursor.New(args)

	res, err := c.parse(cur)
	if err != nil {
		return nil, err
	}

	if !cur.Available() {
		return res, nil
	}

	word, err := cur.Get()
	if err != nil {
		return nil, newError(ErrOutOfData, err.Error())
	}

	if word != terminator {
		return nil, newErrorf(ErrUnusedArgument, "unused argument '%s'", word)
	}

	for cur.Available() {
		word, _ = cur.Get()
		res.remaining = append(res.remaining, word)
	}

	return res, nil
}

// parse runs the two matching phases of a single command over the
// shared cursor: the option phase, then either subcommand descent or
// positional consumption.
func (c *Command) parse(cur *cursor.Cursor) (*Result, error) {
	res := newResult(c)

	if err := c.parseOptions(cur, res); err != nil {
		return nil, err
	}

	// Every single-value option left unset resolves to its default.
	for _, opt := range c.options {
		if opt.kind() != singleValue || !opt.HasDefault {
			continue
		}

		if _, set := res.values[opt.Long]; !set {
			res.values[opt.Long] = opt.Default
		}
	}

	if len(c.commands) > 0 {
		return res, c.parseSubcommand(cur, res)
	}

	return res, c.parsePositionals(cur, res)
}

// parseOptions repeatedly consumes option words until the next word
// does not look like an option, or is the terminator, both of which
// belong to the structural phase or to the root caller.
func (c *Command) parseOptions(cur *cursor.Cursor, res *Result) error {
	for cur.Available() {
		word, err := cur.Get()
		if err != nil {
			return newError(ErrOutOfData, err.Error())
		}

		if !strings.HasPrefix(word, "-") || word == terminator {
			cur.Unget()

			return nil
		}

		if strings.HasPrefix(word, longPrefix) {
			opt, known := c.longNames[word]
			if !known {
				return c.invalidOption(word)
			}

			if err := c.apply(opt, cur, res); err != nil {
				return err
			}

			continue
		}

		// A short cluster: each character after the dash resolves
		// independently, left to right, through the alias table. The
		// whole cluster resolves before any option applies.
		var resolved []*Option

		for _, short := range word[1:] {
			opt, known := c.shortNames[short]
			if !known {
				return c.invalidOption("-" + string(short))
			}

			resolved = append(resolved, opt)
		}

		for _, opt := range resolved {
			// A value-taking option inside a cluster still consumes
			// the next whole word, wherever the character sits.
			if err := c.apply(opt, cur, res); err != nil {
				return err
			}
		}
	}

	return nil
}

// apply records one resolved occurrence of an option on the result,
// consuming the option's value word from the cursor when it takes one.
func (c *Command) apply(opt *Option, cur *cursor.Cursor, res *Result) error {
	if opt.builtin {
		return c.runBuiltin(opt)
	}

	switch opt.kind() {
	case singleFlag:
		if res.flags[opt.Long] > 0 {
			return newErrorf(ErrDuplicateOption, "'%s' can only be given once", opt.Long)
		}

		res.flags[opt.Long] = 1

	case multiFlag:
		res.flags[opt.Long]++

	case singleValue:
		if _, set := res.values[opt.Long]; set {
			return newErrorf(ErrDuplicateOption, "'%s' can only be given once", opt.Long)
		}

		value, err := cur.Get()
		if err != nil {
			return newError(ErrOutOfData, err.Error())
		}

		res.values[opt.Long] = value

	case multiValue:
		value, err := cur.Get()
		if err != nil {
			return newError(ErrOutOfData, err.Error())
		}

		res.lists[opt.Long] = append(res.lists[opt.Long], value)
	}

	return nil
}

// runBuiltin performs the side effect of a built-in option and raises
// the termination signal, which unwinds the whole parse call without
// producing a Result.
func (c *Command) runBuiltin(opt *Option) error {
	switch opt.Long {
	case helpName:
		fmt.Fprint(c.out, c.usage())
	case versionName:
		fmt.Fprintln(c.out, c.version)
	}

	return ErrTerminated
}

// parseSubcommand selects and descends into one of the declared
// subcommands, running its phases over the same cursor. No remaining
// word, or a terminator, leaves the result's subcommand pair absent.
func (c *Command) parseSubcommand(cur *cursor.Cursor, res *Result) error {
	if !cur.Available() {
		return nil
	}

	word, err := cur.Get()
	if err != nil {
		return newError(ErrOutOfData, err.Error())
	}

	if word == terminator {
		cur.Unget()

		return nil
	}

	sub := c.find(word)
	if sub == nil {
		return &Error{
			Kind:       ErrInvalidSubcommand,
			Message:    fmt.Sprintf("invalid subcommand '%s'", word),
			Suggestion: suggestion(word, c.commandNames()),
		}
	}

	child, err := sub.parse(cur)
	if err != nil {
		return err
	}

	res.subName = sub.name
	res.sub = child

	return nil
}

// parsePositionals consumes one word per declared slot, in declaration
// order, then lets a final Multiple slot absorb everything left before
// the terminator.
func (c *Command) parsePositionals(cur *cursor.Cursor, res *Result) error {
	for _, arg := range c.positionals {
		word, ok := c.nextStructured(cur)
		if !ok {
			return newErrorf(ErrMissingPositional,
				"positional argument '%s' missing", arg.Name)
		}

		if !arg.Multiple {
			res.values[arg.Name] = word

			continue
		}

		res.lists[arg.Name] = append(res.lists[arg.Name], word)

		for {
			word, ok = c.nextStructured(cur)
			if !ok {
				break
			}

			res.lists[arg.Name] = append(res.lists[arg.Name], word)
		}
	}

	return nil
}

// nextStructured returns the next word available to structured parsing.
// The terminator counts as end of input here: it is left on the cursor
// for the root call to post-process.
func (c *Command) nextStructured(cur *cursor.Cursor) (string, bool) {
	word, err := cur.Get()
	if err != nil {
		return "", false
	}

	if word == terminator {
		cur.Unget()

		return "", false
	}

	return word, true
}

func (c *Command) invalidOption(name string) error {
	return &Error{
		Kind:       ErrInvalidOption,
		Message:    fmt.Sprintf("invalid option '%s'", name),
		Suggestion: suggestion(name, c.optionNames()),
	}
}

func (c *Command) optionNames() []string {
	names := make([]string, 0, len(c.options))
	for _, opt := range c.options {
		names = append(names, opt.Long)
	}

	return names
}

func (c *Command) commandNames() []string {
	names := make([]string, 0, len(c.commands))
	for _, sub := range c.commands {
		names = append(names, sub.name)
	}

	return names
}
