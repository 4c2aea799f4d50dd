package bench

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

const csvHeader = "timestamp,dataset,lines,total_length,method,time_nanoseconds,memory_bytes"

// ResultWriter appends benchmark rows to a CSV file, writing the header
// only when the file is first created.
type ResultWriter struct {
	f  *os.File
	w  *csv.Writer
	ds *Dataset

	now func() time.Time // test hook
}

func NewResultWriter(path string, ds *Dataset) (*ResultWriter, error) {
	_, statErr := os.Stat(path)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	w := &ResultWriter{f: f, w: csv.NewWriter(f), ds: ds, now: time.Now}
	if os.IsNotExist(statErr) {
		if _, err := f.WriteString(csvHeader + "\n"); err != nil {
			f.Close()
			return nil, err
		}
	}
	return w, nil
}

// Write appends one result row.
func (w *ResultWriter) Write(method string, nanos int64, memory int) error {
	record := []string{
		w.now().Format("2006-01-02 15:04:05"),
		w.ds.Name,
		strconv.Itoa(len(w.ds.Lines)),
		strconv.Itoa(w.ds.TotalLength),
		method,
		strconv.FormatInt(nanos, 10),
		strconv.Itoa(memory),
	}
	if err := w.w.Write(record); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

func (w *ResultWriter) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
