package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wippyai/bytify"
)

func main() {
	var (
		exprList    = flag.String("e", "", "Expression list to compile")
		outFile     = flag.String("o", "", "Write output to file instead of stdout")
		format      = flag.String("format", "hex", "Output format: hex, raw, go")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	source, err := readSource(*exprList, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(source, *outFile, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readSource picks the expression list from -e, a file argument, or stdin.
func readSource(exprList string, args []string) (string, error) {
	if exprList != "" {
		return exprList, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no input: pass -e, a file argument, or pipe stdin")
	}
	return string(data), nil
}

func run(source, outFile, format string) error {
	out, err := bytify.Compile(source)
	if err != nil {
		return err
	}

	var rendered []byte
	switch format {
	case "raw":
		rendered = out
	case "hex":
		rendered = []byte(hexDump(out))
	case "go":
		rendered = []byte(goArray(out))
	default:
		return fmt.Errorf("unknown format %q (want hex, raw, or go)", format)
	}

	if outFile != "" {
		return os.WriteFile(outFile, rendered, 0o644)
	}
	_, err = os.Stdout.Write(rendered)
	return err
}

// hexDump renders bytes in rows of 16 with an offset column.
func hexDump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := min(off+16, len(data))
		fmt.Fprintf(&b, "%08x ", off)
		for _, v := range data[off:end] {
			fmt.Fprintf(&b, " %02x", v)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%08x\n", len(data))
	return b.String()
}

// goArray renders bytes as a Go byte-slice literal.
func goArray(data []byte) string {
	var b strings.Builder
	b.WriteString("[]byte{")
	for i, v := range data {
		if i%12 == 0 {
			b.WriteString("\n\t")
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%02x,", v)
	}
	if len(data) > 0 {
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}
