// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParcelID is one line of a PID list: the assessment site's parcel id and
// the town's map and lot for it.
type ParcelID struct {
	PID string
	Map string
	Lot string
}

// ReadPIDs parses "PID,Map,Lot" lines. Lines starting with '#' and blank
// lines are skipped; missing Map or Lot fields are empty.
func ReadPIDs(r io.Reader) ([]ParcelID, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var ids []ParcelID
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return ids, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading PID list: %w", err)
		}
		var fields [3]string
		for i := 0; i < len(fields) && i < len(rec); i++ {
			fields[i] = strings.TrimSpace(rec[i])
		}
		if fields[0] == "" {
			continue
		}
		ids = append(ids, ParcelID{PID: fields[0], Map: fields[1], Lot: fields[2]})
	}
}

// ReadPIDFile reads a PID list from path.
func ReadPIDFile(path string) ([]ParcelID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PID list: %w", err)
	}
	defer f.Close()
	return ReadPIDs(f)
}
