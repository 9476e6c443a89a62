package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/szabop/md-table-tools/internal/table"
)

func printHelp() {
	fmt.Print(`mdtablefmt - Markdown pipe-table realigner

Reads a single Markdown pipe table, recomputes column widths and per-column
alignment from the delimiter row, and writes the realigned table to standard
output.

USAGE:
    mdtablefmt [OPTIONS] [FILE]

With no FILE, the table is read from standard input.

OPTIONS:
    -h, --help    Show this help message and exit
        --trace   Write per-column layout decisions to standard error
`)
}

func main() {
	help := flag.BoolP("help", "h", false, "show help and exit")
	trace := flag.Bool("trace", false, "write layout trace to stderr")
	flag.Parse()

	if *help {
		printHelp()
		os.Exit(0)
	}

	var src []byte
	var err error
	switch flag.NArg() {
	case 0:
		src, err = io.ReadAll(os.Stdin)
	case 1:
		src, err = os.ReadFile(flag.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "Error: expected at most one input file")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	renderer := &table.Renderer{}
	if *trace {
		renderer.Trace = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	out, err := renderer.Format(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := io.WriteString(os.Stdout, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
