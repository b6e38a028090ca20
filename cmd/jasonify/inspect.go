package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"

	"github.com/reoring/jasonify"
)

// tokenRecord is one line of `tokens --json` output.
type tokenRecord struct {
	Token  string `json:"token"`
	Text   string `json:"text,omitempty"`
	Depth  int    `json:"depth"`
	Offset int64  `json:"offset"`
}

func tokensCmd(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("tokens", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print one JSON object per token")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: jasonify tokens [--json] file.json")
		return exitUsage
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fail(stderr, "tokens: %v", err)
	}

	bw := bufio.NewWriter(stdout)
	defer bw.Flush()
	enc := json.NewEncoder(bw)
	p := jasonify.NewParser(data)
	for {
		tok, err := p.Next()
		if err != nil {
			bw.Flush()
			return fail(stderr, "tokens: %v", err)
		}
		if tok == jasonify.TokenEndDocument {
			return exitOK
		}
		depth := p.Depth()
		if tok.IsStart() {
			depth--
		}
		if *asJSON {
			rec := tokenRecord{Token: tok.String(), Depth: depth, Offset: p.Offset()}
			if tok == jasonify.TokenFieldName || tok.IsScalar() {
				rec.Text = p.Text()
			}
			if err := enc.Encode(rec); err != nil {
				return fail(stderr, "tokens: %v", err)
			}
			continue
		}
		line := strings.Repeat("  ", depth) + tok.String()
		switch {
		case tok == jasonify.TokenFieldName, tok == jasonify.TokenValueString:
			line += " " + quote(p.Text())
		case tok.IsScalar() && tok != jasonify.TokenNull:
			line += " " + p.Text()
		}
		fmt.Fprintln(bw, line)
	}
}

func checkCmd(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: jasonify check file.json")
		return exitUsage
	}
	name := fs.Arg(0)
	data, err := os.ReadFile(name)
	if err != nil {
		return fail(stderr, "check: %v", err)
	}
	p := jasonify.NewParser(data)
	tokens := 0
	for {
		tok, err := p.Next()
		if err != nil {
			var se *jasonify.SyntaxError
			if errors.As(err, &se) {
				return fail(stderr, "%s: offset %d: %s", name, se.Offset, se.Msg)
			}
			return fail(stderr, "%s: %v", name, err)
		}
		if tok == jasonify.TokenEndDocument {
			break
		}
		tokens++
	}
	fmt.Fprintf(stdout, "%s: ok (%d tokens)\n", name, tokens)
	return exitOK
}

func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return string(b)
}
