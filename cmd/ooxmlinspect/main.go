// Command ooxmlinspect lists the contents of an OOXML container
// (.docx, .pptx) as a colorized table or as JSON.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/simworks/ooxml"
)

// previewLen caps how much of an entry's text content the table shows.
const previewLen = 60

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ooxmlinspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jsonOut := fs.Bool("json", false, "print the summary as JSON")
	maxEntry := fs.Int64("max-entry-size", 0, "per-entry decompression cap in bytes (0 = unlimited)")
	debug := fs.Bool("debug", false, "log inspection diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ooxmlinspect [flags] FILE")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	if *debug {
		ooxml.Init()
	}

	var opts []ooxml.Option
	if *maxEntry > 0 {
		opts = append(opts, ooxml.WithMaxEntrySize(*maxEntry))
	}

	if *jsonOut {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "ooxmlinspect: %v\n", err)
			return 1
		}
		out, err := ooxml.InspectJSON(data, opts...)
		if err != nil {
			fmt.Fprintf(stderr, "ooxmlinspect: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(out))
		return 0
	}

	summary, err := ooxml.InspectFile(path, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "ooxmlinspect: %v\n", err)
		return 1
	}
	printSummary(stdout, summary)
	return 0
}

func printSummary(w io.Writer, summary *ooxml.Summary) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	for _, e := range summary.Entries {
		if e.IsDir {
			fmt.Fprintf(w, "%s %s\n", green("dir "), cyan(e.Path))
			continue
		}
		line := fmt.Sprintf("%s %s %s", green("file"), cyan(e.Path), gray(fmt.Sprintf("%d bytes", e.Size)))
		if e.Content != nil {
			line += " " + gray(preview(*e.Content))
		}
		fmt.Fprintln(w, line)
	}
}

// preview flattens text onto one line and truncates it for display.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= previewLen {
		return s
	}
	return string(runes[:previewLen]) + "..."
}
