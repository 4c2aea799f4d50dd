package bench

import (
	"time"

	"go.uber.org/zap"

	"github.com/milden6/packedidx"
)

// Run times idx over the whole query set and appends one CSV row. A
// wrong membership answer is a bug in the index, not an input problem,
// and aborts the process.
func Run(logger *zap.Logger, method string, idx packedidx.Index, positive, negative [][]byte, w *ResultWriter) {
	start := time.Now()
	for _, pattern := range positive {
		if !idx.Search(pattern) {
			logger.Fatal("positive pattern rejected",
				zap.String("method", method),
				zap.ByteString("pattern", pattern))
		}
	}
	for _, pattern := range negative {
		if idx.Search(pattern) {
			logger.Fatal("negative pattern accepted",
				zap.String("method", method),
				zap.ByteString("pattern", pattern))
		}
	}
	elapsed := time.Since(start)

	memory := 0
	if r, ok := idx.(packedidx.MemoryReporter); ok {
		memory = r.MemoryUsage()
	}
	logger.Info("benchmark",
		zap.String("method", method),
		zap.Duration("time", elapsed),
		zap.Int("memory_bytes", memory))
	if err := w.Write(method, elapsed.Nanoseconds(), memory); err != nil {
		logger.Fatal("writing result row", zap.Error(err))
	}
}
