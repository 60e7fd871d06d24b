package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/splitledger-dev/splitledger/internal/mapping"
)

// Decode reads a whole CSV file into its effective header plus one Row per
// data record. When the first record is the known headerless preamble, the
// effective header is the rewritten one and the fixed number of leading
// rows is skipped before data starts.
//
// Rows shorter than the header simply omit the trailing columns; extra
// cells are dropped. Deciding which mapping fits the returned header is the
// matcher's job, not Decode's.
func Decode(data []byte) ([]string, []Row, error) {
	cr := newReader(data)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV header: %w", err)
	}

	skip := 0
	if effective, skipRows, ok := mapping.DetectPreamble(header); ok {
		header = effective
		skip = skipRows
		cr = newReader(data)
		for i := 0; i < skipRows; i++ {
			if _, err := cr.Read(); err == io.EOF {
				return header, nil, nil
			} else if err != nil {
				return nil, nil, fmt.Errorf("skipping preamble row %d: %w", i+1, err)
			}
		}
	}

	var rows []Row
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading CSV row %d: %w", skip+i+2, err)
		}
		row := make(Row, len(header))
		for j, col := range header {
			if j < len(rec) {
				row[col] = rec[j]
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func newReader(data []byte) *csv.Reader {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	return cr
}
