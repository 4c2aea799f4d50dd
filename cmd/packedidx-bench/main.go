// Command packedidx-bench builds every index variant from a dataset of
// newline-separated strings, verifies membership for the whole dataset
// and appends per-variant timing and memory rows to a CSV file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"github.com/milden6/packedidx"
	"github.com/milden6/packedidx/bench"
)

func main() {
	parser := argparse.NewParser("packedidx-bench", "benchmarks the static string-dictionary indices")

	dataset := parser.StringPositional(&argparse.Options{Help: "path to the dataset file"})
	limit := parser.Int("l", "limit", &argparse.Options{Required: false, Help: "byte budget for loading, 0 means unbounded", Default: 0})
	csvPath := parser.String("o", "csv", &argparse.Options{Required: false, Help: "CSV file to append results to", Default: "result.csv"})
	ratio := parser.Float("r", "ratio", &argparse.Options{Required: false, Help: "fraction of the dataset used as the positive set", Default: 1.0})
	seed := parser.Int("s", "seed", &argparse.Options{Required: false, Help: "seed for the train/test split", Default: 42})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}
	if *dataset == "" {
		fmt.Print(parser.Usage("dataset path is required"))
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ds, err := bench.LoadDataset(logger, *dataset, *limit)
	if err != nil {
		logger.Fatal("loading dataset", zap.Error(err))
	}
	ds.Name = filepath.Base(*dataset)
	positive, negative := bench.Split(ds.Lines, int64(*seed), *ratio)

	writer, err := bench.NewResultWriter(*csvPath, ds)
	if err != nil {
		logger.Fatal("opening result file", zap.Error(err))
	}
	defer writer.Close()

	trie := packedidx.NewBaseTrie(positive)
	logger.Info("trie built",
		zap.Int("nodes", trie.NumNodes()),
		zap.Int("edges", trie.NumEdges()))
	bench.Run(logger, "BaseTrie", trie, positive, negative, writer)
	bench.Run(logger, "DoubleArrayTrie", packedidx.NewDoubleArrayTrie(trie), positive, negative, writer)
	bench.Run(logger, "BinarySearchTrie", packedidx.NewBinarySearchTrie(trie), positive, negative, writer)

	tail := packedidx.NewTailTrie(trie)
	bench.Run(logger, "TailTrie", tail, positive, negative, writer)
	bench.Run(logger, "TailDoubleArrayTrie", packedidx.NewTailDoubleArrayTrie(tail), positive, negative, writer)
	bench.Run(logger, "TailBinarySearchTrie", packedidx.NewTailBinarySearchTrie(tail), positive, negative, writer)

	pd := packedidx.NewPathDecomposedTrie(trie)
	bench.Run(logger, "PathDecomposedTrie", pd, positive, negative, writer)
	bench.Run(logger, "PathDecomposedDoubleArrayTrie", packedidx.NewPathDecomposedDoubleArrayTrie(pd), positive, negative, writer)
	bench.Run(logger, "PathDecomposedBinarySearchTrie", packedidx.NewPathDecomposedBinarySearchTrie(pd), positive, negative, writer)

	adfa := packedidx.NewBaseADFA(trie)
	logger.Info("adfa built",
		zap.Int("nodes", adfa.NumNodes()),
		zap.Int("edges", adfa.NumEdges()))
	bench.Run(logger, "BaseADFA", adfa, positive, negative, writer)
	bench.Run(logger, "DoubleArrayADFA", packedidx.NewDoubleArrayADFA(adfa), positive, negative, writer)
	bench.Run(logger, "BinarySearchADFA", packedidx.NewBinarySearchADFA(adfa), positive, negative, writer)

	pdADFA := packedidx.NewPathDecomposedADFA(adfa)
	bench.Run(logger, "PathDecomposedADFA", pdADFA, positive, negative, writer)
	bench.Run(logger, "PathDecomposedDoubleArrayADFA", packedidx.NewPathDecomposedDoubleArrayADFA(pdADFA), positive, negative, writer)
	bench.Run(logger, "PathDecomposedBinarySearchADFA", packedidx.NewPathDecomposedBinarySearchADFA(pdADFA), positive, negative, writer)
}
