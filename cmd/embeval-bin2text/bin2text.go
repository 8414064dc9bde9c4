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
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/danieldk/embeval"
	"github.com/danieldk/embeval/cmd/common"
)

func main() {
	normalize := flag.Bool("normalize", false, "normalize vectors to unit length")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: embeval-bin2text [-normalize] vectors.bin")
		os.Exit(common.ExitUsage)
	}

	f, err := os.Open(flag.Arg(0))
	common.ExitIfError("Cannot open file: ", err)
	defer f.Close()

	embeds, err := embeval.ReadWord2VecBinary(bufio.NewReader(f), *normalize)
	common.ExitIfError("Cannot read vectors: ", err)

	common.ExitIfError("Cannot write vectors: ", embeval.WriteText(os.Stdout, embeds))
}
