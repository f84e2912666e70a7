/*
Lexdot reads a Lexicon previously written by lexbuild and prints its
automaton as a Graphviz digraph on stdout.

Usage:

	lexdot [flags]

The flags are:

	-i, --in FILE
		Read the Lexicon from FILE. Defaults to "lexicon.json".

	--id NAME
		Name the digraph NAME. Defaults to "MADFA".
*/
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jamra/lexicon/pkg/lexicon"
)

var (
	inFile = pflag.StringP("in", "i", "lexicon.json", "file to read the Lexicon from")
	id     = pflag.String("id", "MADFA", "name of the rendered digraph")
)

func main() {
	pflag.Parse()

	lex, err := readLexicon(*inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexdot: %s\n", err)
		os.Exit(1)
	}

	fmt.Print(lex.DOT(*id))
}

func readLexicon(path string) (*lexicon.Lexicon[byte], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	lex := new(lexicon.Lexicon[byte])
	if err := lex.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(err, "decoding lexicon")
	}
	return lex, nil
}
