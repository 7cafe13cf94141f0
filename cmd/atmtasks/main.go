package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"pkg.jsn.cam/atmtasks/pkg/taskgen"
)

/*generates ATM service tasks in the form of {"region": R, "requestType": "T", "atmId": A},*/

const (
	exitFailure  = 1
	exitArgument = 2
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("[ATMTASKS] ")
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	log.SetOutput(stderr)

	fs := flag.NewFlagSet("atmtasks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	filename := fs.String("filename", "", "Output file name (required)")
	lines := fs.Int("lines", 0, "Number of lines in the file (required, positive)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitArgument
	}
	if err := validateArgs(fs, *filename, *lines); err != nil {
		printError(stderr, err)
		fs.Usage()
		return exitArgument
	}

	bar := newProgressBar(stderr, *lines)
	gen, err := taskgen.New(nil, taskgen.WithProgress(bar))
	if err != nil {
		printError(stderr, err)
		return exitFailure
	}

	log.Printf("run %s: generating %d tasks into %s", gen.RunID(), *lines, *filename)
	summary, err := gen.WriteFile(*filename, *lines)
	_ = bar.Finish()
	if err != nil {
		printError(stderr, err)
		if errors.Is(err, taskgen.ErrInvalidArgument) {
			return exitArgument
		}
		return exitFailure
	}

	if err := renderSummary(stderr, summary); err != nil {
		log.Printf("Warning: failed to render summary: %v", err)
	}
	log.Printf("run %s: done in %v", summary.RunID, summary.Elapsed)
	return 0
}

func validateArgs(fs *flag.FlagSet, filename string, lines int) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	switch {
	case !set["filename"] || filename == "":
		return fmt.Errorf("%w: --filename is required", taskgen.ErrInvalidArgument)
	case !set["lines"]:
		return fmt.Errorf("%w: --lines is required", taskgen.ErrInvalidArgument)
	case lines <= 0:
		return fmt.Errorf("%w: --lines must be positive, got %d", taskgen.ErrInvalidArgument, lines)
	case fs.NArg() > 0:
		return fmt.Errorf("%w: unexpected arguments %v", taskgen.ErrInvalidArgument, fs.Args())
	}
	return nil
}
