package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bgrewell/attr-kit"
	"github.com/bgrewell/attr-kit/pkg/attributes"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/bgrewell/usage"
)

func main() {

	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Print verbose output", "", nil)
	number := u.AddBooleanOption("n", "number", false, "Treat the target as a raw attribute word (decimal or 0x hex)", "", nil)
	strict := u.AddBooleanOption("s", "strict", false, "Reject malformed attribute words", "", nil)
	asJSON := u.AddBooleanOption("j", "json", false, "Print the report as JSON", "", nil)
	asYAML := u.AddBooleanOption("y", "yaml", false, "Print the report as YAML", "", nil)
	target := u.AddArgument(1, "target", "Path of the file or directory, or a raw word with -n", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	if target == nil || *target == "" {
		u.PrintError(fmt.Errorf("a <target> path or attribute word must be provided"))
		os.Exit(1)
	}

	format := "text"
	switch {
	case *asJSON && *asYAML:
		u.PrintError(fmt.Errorf("-j and -y cannot be combined"))
		os.Exit(1)
	case *asJSON:
		format = "json"
	case *asYAML:
		format = "yaml"
	}

	level := logging.LEVEL_INFO
	if *verbose {
		level = logging.LEVEL_TRACE
	}
	logger := logging.NewSimpleLogger(os.Stderr, level, true)

	var r report
	if *number {
		s, err := decodeWord(*target, *strict)
		if err != nil {
			u.PrintError(err)
			os.Exit(1)
		}
		r = newReport("", s)
	} else {
		s, err := attrkit.Open(*target, options.WithLogger(logger), options.WithStrict(*strict))
		if err != nil {
			u.PrintError(err)
			os.Exit(1)
		}
		r = newReport(*target, s)
	}

	out, err := render(r, format)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// decodeWord parses a raw attribute word as accepted by strconv with base 0.
func decodeWord(text string, strict bool) (attributes.AttributeSet, error) {
	raw, err := strconv.ParseUint(text, 0, 32)
	if err != nil {
		return attributes.AttributeSet{}, fmt.Errorf("invalid attribute word %q: %w", text, err)
	}
	if strict {
		return attributes.DecodeStrict(uint32(raw))
	}
	return attrkit.Decode(uint32(raw)), nil
}
