package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"pkg.jsn.cam/atmtasks/pkg/taskgen"
)

var (
	bold = color.New(color.Bold)
	red  = color.New(color.FgRed)
)

func printError(w io.Writer, err error) {
	_, _ = red.Fprintf(w, "error: %v\n", err)
}

// newProgressBar draws to w only when w is a terminal; otherwise the
// returned bar discards its output.
func newProgressBar(w io.Writer, lines int) *progressbar.ProgressBar {
	if !isTerminal(w) {
		w = io.Discard
	}
	return progressbar.NewOptions64(int64(max(lines, 0)),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Generating tasks"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func renderSummary(w io.Writer, s taskgen.Summary) error {
	_, _ = bold.Fprintf(w, "Wrote %s tasks (%s) to %s\n",
		humanize.Comma(int64(s.Written())), humanize.Bytes(uint64(s.Bytes)), s.Filename)

	table := tablewriter.NewWriter(w)
	table.Header("Request Type", "Count", "Share")
	for _, t := range taskgen.RequestTypes {
		if err := table.Append(
			t.String(),
			humanize.Comma(int64(s.Counts[t])),
			strconv.FormatFloat(s.Share(t)*100, 'f', 1, 64)+"%",
		); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if s.Fallback > 0 {
		fmt.Fprintf(w, "%d position(s) not covered by the category pool were filled with %s\n",
			s.Fallback, taskgen.FallbackRequestType)
	}
	return nil
}
