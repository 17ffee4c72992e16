/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// infinigram-demo is a minimal usage example, not a general-purpose CLI
// (spec.md excludes "a command-line or script surface" as out of scope for
// the core library). It builds an infini-gram model from a directory of
// .txt files, persists it to disk, reloads it, and greedily generates a
// continuation of a prefix -- the same build/save/load/query lifecycle
// every caller of the engine package goes through, wired up end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/infinigram-go/infinigram/engine"
	"github.com/infinigram-go/infinigram/tokenizer"
)

const _APP_HEADER = "infinigram-demo (c) infinigram-go"

func main() {
	var corpusDir, modelDir, prefix string
	var genLen, jobs int
	var verbose bool

	fs := flag.NewFlagSet("infinigram-demo", flag.ExitOnError)
	fs.StringVar(&corpusDir, "corpus", "", "directory of .txt documents to build from")
	fs.StringVar(&modelDir, "model", "", "directory to persist/reload the model")
	fs.StringVar(&prefix, "prefix", "", "prefix text to continue")
	fs.IntVar(&genLen, "len", 32, "max generated sequence length, in tokens")
	fs.IntVar(&jobs, "jobs", 1, "tokenization/query concurrency")
	fs.BoolVar(&verbose, "verbose", false, "print build/query progress events")

	fmt.Println(_APP_HEADER)
	fs.Parse(os.Args[1:])

	if corpusDir == "" || modelDir == "" || prefix == "" {
		fmt.Fprintln(os.Stderr, "usage: infinigram-demo --corpus=DIR --model=DIR --prefix=TEXT [--len=N] [--jobs=N] [--verbose]")
		os.Exit(1)
	}

	if err := run(corpusDir, modelDir, prefix, genLen, jobs, verbose); err != nil {
		fmt.Fprintf(os.Stderr, "infinigram-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(corpusDir, modelDir, prefix string, genLen, jobs int, verbose bool) error {
	docs, err := readDocs(corpusDir)
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}

	if len(docs) == 0 {
		return fmt.Errorf("no .txt documents found under %s", corpusDir)
	}

	tok := tokenizer.NewWordVocab(docs)
	cfg := engine.Config{Jobs: jobs, Memoize: true}

	if verbose {
		cfg.Listeners = append(cfg.Listeners, newConsoleListener(os.Stderr))
	}

	ctx := context.Background()

	eng, err := engine.Build(ctx, docs, tok, cfg)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if err := eng.Save(modelDir); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	reloaded, err := engine.Load(modelDir, &tokenizer.WordVocab{}, cfg)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	query, err := reloaded.Tokenizer().EncodeOne(prefix)
	if err != nil {
		return fmt.Errorf("encoding prefix: %w", err)
	}

	if len(query) == 0 {
		return fmt.Errorf("prefix %q encoded to zero tokens", prefix)
	}

	out, err := reloaded.Greedy(query, len(query)+genLen)
	if err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	text, err := reloaded.Tokenizer().DecodeOne(out)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	fmt.Println(text)
	return nil
}

func readDocs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []string

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}

		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}

		docs = append(docs, string(b))
	}

	return docs, nil
}
