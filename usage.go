package argv

import (
	"fmt"
	"strings"
)

// usage renders the command's help text. The layout is fixed: a usage
// line with the ancestor-prefixed command name, the help paragraph if
// present, then one section each for subcommands, options and
// positionals, each only when non-empty.
func (c *Command) usage() string {
	buf := &strings.Builder{}

	fmt.Fprintf(buf, "Usage: %s ...\n", c.path())

	if c.help != "" {
		fmt.Fprintf(buf, "\n%s\n", c.help)
	}

	if len(c.commands) > 0 {
		fmt.Fprint(buf, "\nCommands:\n\n")

		for _, sub := range c.commands {
			fmt.Fprintf(buf, "%s\n", entry(sub.name, sub.help))
		}
	}

	if len(c.options) > 0 {
		fmt.Fprint(buf, "\nOptions:\n\n")

		for _, opt := range c.options {
			fmt.Fprintf(buf, "%s\n", entry(opt.label(), opt.Help))
		}
	}

	if len(c.positionals) > 0 {
		fmt.Fprint(buf, "\nPositionals:\n\n")

		for _, arg := range c.positionals {
			fmt.Fprintf(buf, "%s\n", entry(arg.Name, arg.Help))
		}
	}

	return buf.String()
}

func entry(name, help string) string {
	if help == "" {
		return "  " + name
	}

	return "  " + name + " " + help
}

// path reconstructs the ancestor-prefixed name of the command, like
// "prog sub", by walking the parent back-references up to the root.
func (c *Command) path() string {
	if c.parent == nil {
		return c.name
	}

	return c.parent.path() + " " + c.name
}
