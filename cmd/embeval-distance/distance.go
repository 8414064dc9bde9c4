// Copyright 2015 Daniël de Kok
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danieldk/embeval"
	"github.com/danieldk/embeval/cmd/common"
)

type options struct {
	embedFile string
	nearest   int
	binary    bool
	verbose   bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("embeval-distance", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: embeval-distance -e <embed_file>")
		fs.PrintDefaults()
	}

	common.StringVar(fs, &opts.embedFile, "e", "embed_file", "", "embedding file")
	common.IntVar(fs, &opts.nearest, "k", "nearest", embeval.DefaultNearest, "number of nearest words to show")
	common.BoolVar(fs, &opts.binary, "b", "binary", false, "embedding file is in the binary word2vec format")
	common.BoolVar(fs, &opts.verbose, "v", "verbose", false, "log ignored queries")

	return fs
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if code, ok := common.ParseFlags(fs, args, "e"); !ok {
		return code
	}

	if opts.nearest < 1 {
		fmt.Fprintln(stderr, "the number of nearest words should be positive")
		fs.Usage()
		return common.ExitUsage
	}

	logger := common.NewLogger(stderr, opts.verbose)

	embeds, err := common.ReadEmbeddings(opts.embedFile, opts.binary)
	if err != nil {
		logger.WithField("file", opts.embedFile).Errorf("cannot read embeddings: %v", err)
		return common.ExitError
	}

	fmt.Fprintln(stdout, embeds.Size(), embeds.Dims())

	explorer := &embeval.Explorer{
		Embeddings: embeds,
		K:          opts.nearest,
		Prompt:     "input a word: ",
		PromptOut:  stderr,
		Log:        logger,
	}

	if err := explorer.Run(stdin, stdout); err != nil {
		logger.Errorf("cannot process queries: %v", err)
		return common.ExitError
	}

	return common.ExitOK
}
