// Package bench loads datasets, runs the membership benchmark over
// every index variant and appends the results to a CSV file.
package bench

import (
	"bufio"
	"bytes"
	"math"
	"math/rand"
	"os"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/milden6/packedidx"
)

// Dataset is a deduplicated, byte-sorted collection of EOW-terminated
// strings plus the stats the result rows carry.
type Dataset struct {
	Name        string
	Lines       [][]byte
	TotalLength int
	NumChars    int
}

// LoadDataset reads newline-separated strings from path, stopping once
// the cumulative raw length reaches limit, appends EOW to each, sorts
// and deduplicates. limit <= 0 means unbounded.
func LoadDataset(logger *zap.Logger, path string, limit int) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if limit <= 0 {
		limit = math.MaxInt
	}
	var lines [][]byte
	totalBytes := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<24)
	for sc.Scan() {
		totalBytes += len(sc.Bytes())
		if totalBytes >= limit {
			break
		}
		line := make([]byte, 0, len(sc.Bytes())+1)
		line = append(line, sc.Bytes()...)
		line = append(line, packedidx.EOW)
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	logger.Info("loaded dataset",
		zap.String("path", path),
		zap.Int("lines_raw", len(lines)),
		zap.Int("bytes_raw", totalBytes))

	slices.SortFunc(lines, bytes.Compare)
	lines = slices.CompactFunc(lines, bytes.Equal)

	ds := &Dataset{Name: path, Lines: lines}
	var occur [256]bool
	for _, line := range lines {
		ds.TotalLength += len(line)
		for _, c := range line {
			occur[c] = true
		}
	}
	for _, o := range occur {
		if o {
			ds.NumChars++
		}
	}
	logger.Info("dataset stats",
		zap.Int("lines", len(ds.Lines)),
		zap.Int("total_bytes", ds.TotalLength),
		zap.Int("distinct_bytes", ds.NumChars),
		zap.Float64("avg_length", float64(ds.TotalLength)/float64(max(len(ds.Lines), 1))))
	return ds, nil
}

// Split shuffles the lines deterministically and returns the first
// ratio fraction as the positive set and the rest as the negative set.
func Split(lines [][]byte, seed int64, ratio float64) (positive, negative [][]byte) {
	shuffled := slices.Clone(lines)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	trainSize := int(float64(len(shuffled)) * ratio)
	return shuffled[:trainSize], shuffled[trainSize:]
}
