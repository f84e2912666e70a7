/*
Lexserve reads a Lexicon previously written by lexbuild and serves it over
HTTP: /contains, /lookup, /fuzzy, and /stats.

Usage:

	lexserve [flags]

The flags are:

	-i, --in FILE
		Read the Lexicon from FILE. Defaults to "lexicon.json".

	-p, --port PORT
		Listen on PORT. Defaults to "8080".
*/
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	lexhttp "github.com/jamra/lexicon/api/http"
	"github.com/jamra/lexicon/pkg/lexicon"
)

var (
	inFile = pflag.StringP("in", "i", "lexicon.json", "file to read the Lexicon from")
	port   = pflag.StringP("port", "p", "8080", "port to listen on")
)

func main() {
	pflag.Parse()

	lex, err := readLexicon(*inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexserve: %s\n", err)
		os.Exit(1)
	}

	if err := lexhttp.ListenAndServe(*port, lex); err != nil {
		fmt.Fprintf(os.Stderr, "lexserve: %s\n", err)
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
