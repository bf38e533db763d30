package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bgrewell/attr-kit/pkg/helpers"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/spf13/afero"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

var (
	version = "dev"
)

// CreateProgressCallback returns a ProgressCallback that updates the spinner's message.
func CreateProgressCallback(spinner *yacspin.Spinner) ProgressCallback {
	return func(currentPath string, count int) {
		if spinner == nil {
			return
		}

		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width = 80 // Default width
		}

		fixedPart := fmt.Sprintf(" [%d] ", count)
		availableSpace := width - len(fixedPart) - 6
		if availableSpace < 10 {
			availableSpace = 10
		}

		spinner.Message(fixedPart + helpers.TruncateLeft(currentPath, availableSpace))
	}
}

// InitializeSpinner sets up and starts the yacspin spinner.
func InitializeSpinner() (*yacspin.Spinner, error) {
	settings := yacspin.Config{
		Frequency:         100 * time.Millisecond,
		ShowCursor:        false,
		SpinnerAtEnd:      false,
		CharSet:           yacspin.CharSets[14],
		Colors:            []string{"fgHiCyan"},
		StopColors:        []string{"fgHiGreen"},
		StopFailColors:    []string{"fgHiRed"},
		StopFailCharacter: "✗",
		StopCharacter:     "✓",
	}

	spinner, err := yacspin.New(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create spinner: %w", err)
	}

	if err := spinner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start spinner: %w", err)
	}

	return spinner, nil
}

func main() {
	// Logging level flags
	debug := flag.Bool("v", false, "Enable verbose (debug) logging")
	trace := flag.Bool("vv", false, "Enable trace logging")

	// Scan options
	strict := flag.Bool("strict", false, "Reject malformed attribute words")
	hiddenOnly := flag.Bool("hidden", false, "Only list hidden or system elements")
	quiet := flag.Bool("q", false, "Disable the progress spinner")

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("attrscan v" + version)
		fmt.Println("Usage: attrscan [options] <directory>")
		fmt.Println("  -v               Enable verbose (debug) logging")
		fmt.Println("  -vv              Enable trace logging")
		fmt.Println("  -strict          Reject malformed attribute words")
		fmt.Println("  -hidden          Only list hidden or system elements")
		fmt.Println("  -q               Disable the progress spinner")
		os.Exit(1)
	}
	root := flag.Arg(0)

	level := logging.LEVEL_INFO
	switch {
	case *trace:
		level = logging.LEVEL_TRACE
	case *debug:
		level = logging.LEVEL_DEBUG
	}
	logger := logging.NewSimpleLogger(os.Stderr, level, true)
	opts := []options.Option{options.WithStrict(*strict), options.WithLogger(logger)}

	// The spinner shares the terminal with log output, so it only runs when logging is off
	var spinner *yacspin.Spinner
	if !*quiet && !*debug && !*trace {
		var err error
		spinner, err = InitializeSpinner()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize spinner: %v\n", err)
			fmt.Fprintf(os.Stderr, "Progress updates will be disabled.\n")
		}
	}

	entries, err := scan(afero.NewOsFs(), root, CreateProgressCallback(spinner), opts...)
	if err != nil {
		if spinner != nil {
			spinner.StopFailMessage(fmt.Sprintf(" Failed to scan %s: %v", root, err))
			spinner.StopFail()
		} else {
			fmt.Fprintf(os.Stderr, "Failed to scan %s: %v\n", root, err)
		}
		os.Exit(1)
	}

	kept, failed := filter(entries, *hiddenOnly)
	if spinner != nil {
		spinner.StopMessage(fmt.Sprintf(" Scanned %d elements in %s", len(entries), root))
		spinner.Stop()
	}

	for _, e := range kept {
		fmt.Printf("%s  %s\n", e.set.String(), e.path)
	}
	logFailures(logging.NewLogger(logger), root, len(entries), failed)
	if len(failed) > 0 {
		os.Exit(2)
	}
}
