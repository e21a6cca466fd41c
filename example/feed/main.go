package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/okapi-cli/argv"
)

//
// A small zoo-feeding CLI showing how a command grammar is declared and
// how the three parse outcomes (result, error, termination) are mapped
// to process exit codes.
//

func grammar() *argv.Command {
	root := argv.New("feed", "feed the animals of the zoo", "1.0.0")
	must(root.AddOption(argv.Option{
		Long: "--verbose", Short: "-v", Multiple: true, Help: "increase verbosity",
	}))

	cat, err := root.AddCommand("cat", "feed the cat", "")
	must(err)
	must(cat.AddOption(argv.Option{
		Long: "--rate", Short: "-r", Default: "10000", HasDefault: true, Help: "feeding rate",
	}))
	must(cat.AddOption(argv.Option{
		Long: "--auto", Short: "-a", Help: "feed automatically",
	}))
	must(cat.AddPositional(argv.Positional{Name: "food", Help: "what to feed the cat"}))

	monkey, err := root.AddCommand("monkey", "feed the monkey", "")
	must(err)
	must(monkey.AddOption(argv.Option{
		Long: "--height", Default: "80", HasDefault: true, Help: "throwing height",
	}))
	must(monkey.AddPositional(argv.Positional{
		Name: "banana", Multiple: true, Help: "bananas to throw, in order",
	}))

	return root
}

// must panics on grammar registration errors: a broken grammar should
// never let the program run at all.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	res, err := grammar().Parse(os.Args)

	// --help and --version have already written their output.
	if errors.Is(err, argv.ErrTerminated) {
		os.Exit(0)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "feed: %s\n", err)

		var perr *argv.Error
		if errors.As(err, &perr) && perr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "did you mean '%s'?\n", perr.Suggestion)
		}

		os.Exit(2)
	}

	report(res)
}

func report(res *argv.Result) {
	verbose, _ := res.Occurrences("--verbose")
	fmt.Printf("verbosity: %d\n", verbose)

	name, sub := res.Subcommand()
	switch name {
	case "cat":
		rate, _ := sub.Value("--rate")
		food, _ := sub.Value("food")
		auto, _ := sub.Present("--auto")
		fmt.Printf("feeding the cat %s at rate %s (auto: %v)\n", food, rate, auto)
	case "monkey":
		height, _ := sub.Value("--height")
		fmt.Printf("throwing %v to the monkey from %s\n", sub.Values("banana"), height)
	default:
		fmt.Println("nothing to feed")
	}

	if remaining := res.Remaining(); len(remaining) > 0 {
		fmt.Printf("passed through: %v\n", remaining)
	}
}
