package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"tagsoup/pkg/css"
	"tagsoup/pkg/html"
)

func main() {
	cssMode := flag.Bool("css", false, "treat the input as CSS")
	htmlMode := flag.Bool("html", false, "treat the input as HTML")
	tokens := flag.Bool("tokens", false, "dump the token stream instead of the parse result")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-css|-html] [-tokens] [file]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reads from stdin when no file is given; without -css or -html\n")
		fmt.Fprintf(os.Stderr, "the pipeline is picked by file extension (.css means CSS).\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *cssMode && *htmlMode {
		fmt.Fprintf(os.Stderr, "Error: only one of -css and -html may be given\n")
		os.Exit(1)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	input, err := readInput(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	asCSS := *cssMode || (!*htmlMode && strings.EqualFold(filepath.Ext(name), ".css"))
	if asCSS {
		runCSS(input, *tokens)
	} else {
		runHTML(input, *tokens)
	}
}

func readInput(name string) (string, error) {
	if name == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func runCSS(input string, tokens bool) {
	if tokens {
		tz := css.NewTokenizer(input)
		for {
			tok := tz.NextToken()
			if tok.Type == css.TokenEOF {
				return
			}
			spew.Dump(tok)
		}
	}

	rules, err := css.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing CSS: %v\n", err)
		os.Exit(1)
	}
	for _, rule := range rules {
		fmt.Println(rule)
	}
	spew.Dump(rules)
}

func runHTML(input string, tokens bool) {
	if tokens {
		tz := html.NewTokenizer(input)
		for {
			tok := tz.NextToken()
			if tok.Type == html.TokenEOF {
				return
			}
			spew.Dump(tok)
		}
	}

	nodes, err := html.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}
	for _, node := range nodes {
		fmt.Println(node.SerializeOuter())
	}
	spew.Dump(nodes)
}
