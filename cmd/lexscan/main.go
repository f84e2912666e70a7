/*
Lexscan reads a Lexicon previously written by lexbuild and, for every line
of text on stdin, reports for each starting offset the longest substring
beginning there that is a member (a longest-match scan run repeatedly
from each starting position), printed as "offset:end word".

Usage:

	lexscan [flags]

The flags are:

	-i, --in FILE
		Read the Lexicon from FILE. Defaults to "lexicon.json".
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jamra/lexicon/pkg/lexicon"
)

var inFile = pflag.StringP("in", "i", "lexicon.json", "file to read the Lexicon from")

func main() {
	pflag.Parse()

	lex, err := readLexicon(*inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexscan: %s\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := []byte(scanner.Text())
		for offset := 0; offset < len(line); offset++ {
			match, ok := lex.Lookup(line, offset)
			if !ok {
				continue
			}
			fmt.Printf("%d:%d %s\n", offset, match.End, match.Word)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "lexscan: %s\n", err)
		os.Exit(1)
	}
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
