package expensewise

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/shopspring/decimal"
)

// This file contains the tabular codec shared by every persisted collection.
// Each collection lives in its own CSV file with a header row, so the data
// stays human-readable and diffable. The codec is deliberately forgiving on
// read: a damaged file must never prevent the rest of the profile from
// loading, so structural faults degrade to an empty collection and row-level
// faults degrade to a skipped row, both logged on the diagnostic channel.
// Writes are full rewrites of the canonical form.

// Record is one decoded row, keyed by column name. Numeric columns hold a
// canonical decimal string ("0" when the stored value did not parse).
type Record map[string]string

// DecodeTable reads an ordered collection from r. A missing header, or a
// header lacking any of the schema's columns, yields an empty (nil) slice.
// Rows that cannot be processed are skipped.
func DecodeTable(r io.Reader, schema Schema) []Record {
	rows, header := readRows(r, schema)
	if header == nil {
		return nil
	}
	var records []Record
	for _, row := range rows {
		records = append(records, decodeRow(row, header, schema))
	}
	return records
}

// DecodeKeyedTable reads an identified collection from r, keyed by the
// schema's ID column. Rows with an empty id are skipped; when two rows carry
// the same id the later one wins.
func DecodeKeyedTable(r io.Reader, schema Schema) map[string]Record {
	rows, header := readRows(r, schema)
	if header == nil {
		return nil
	}
	records := make(map[string]Record)
	for i, row := range rows {
		rec := decodeRow(row, header, schema)
		id := rec[schema.ID]
		if id == "" {
			log.Printf("skip-row table=%q line=%d: empty %q", schema.Name, i+2, schema.ID)
			continue
		}
		if _, dup := records[id]; dup {
			log.Printf("duplicate-id table=%q line=%d id=%q: keeping the later row", schema.Name, i+2, id)
		}
		delete(rec, schema.ID)
		records[id] = rec
	}
	return records
}

// readRows parses the raw CSV and validates the header against the schema.
// It returns a nil header when the table is structurally unusable. Rows that
// cannot be parsed are skipped, they must not take the rest of the file down
// with them.
func readRows(r io.Reader, schema Schema) (rows [][]string, header []string) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	line := 0
	for {
		line++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if header == nil {
				log.Printf("empty-table table=%q: unreadable header: %v", schema.Name, err)
				return nil, nil
			}
			log.Printf("skip-row table=%q line=%d: %v", schema.Name, line, err)
			continue
		}
		if header == nil {
			header = row
			continue
		}
		rows = append(rows, row)
	}
	if header == nil {
		return nil, nil
	}
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	for _, f := range schema.Fields {
		if !have[f] {
			log.Printf("empty-table table=%q: header lacks column %q", schema.Name, f)
			return nil, nil
		}
	}
	return rows, header
}

// decodeRow maps one raw row onto the schema. Extra cells are ignored,
// missing cells read as empty, and numeric columns are normalized.
func decodeRow(row []string, header []string, schema Schema) Record {
	byName := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(row) {
			byName[h] = row[i]
		}
	}
	rec := make(Record, len(schema.Fields))
	for _, f := range schema.Fields {
		v := byName[f]
		if schema.isNumeric(f) {
			d, err := decimal.NewFromString(v)
			if err != nil {
				log.Printf("bad-number table=%q column=%q value=%q: using 0", schema.Name, f, v)
				d = decimal.Zero
			}
			v = d.String()
		}
		rec[f] = v
	}
	return rec
}

// EncodeTable rewrites an ordered collection to w in canonical form, header
// included even when the collection is empty.
func EncodeTable(w io.Writer, schema Schema, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(schema.Fields); err != nil {
		return fmt.Errorf("persist error: cannot write %q header: %w", schema.Name, err)
	}
	row := make([]string, len(schema.Fields))
	for _, rec := range records {
		for i, f := range schema.Fields {
			row[i] = rec[f]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("persist error: cannot write %q row: %w", schema.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("persist error: cannot flush %q: %w", schema.Name, err)
	}
	return nil
}

// EncodeKeyedTable rewrites an identified collection to w, synthesizing the
// ID column from the map key. Rows are written in key order so rewrites are
// stable under version control.
func EncodeKeyedTable(w io.Writer, schema Schema, records map[string]Record) error {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cw := csv.NewWriter(w)
	if err := cw.Write(schema.Fields); err != nil {
		return fmt.Errorf("persist error: cannot write %q header: %w", schema.Name, err)
	}
	row := make([]string, len(schema.Fields))
	for _, id := range ids {
		rec := records[id]
		for i, f := range schema.Fields {
			if f == schema.ID {
				row[i] = id
				continue
			}
			row[i] = rec[f]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("persist error: cannot write %q row: %w", schema.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("persist error: cannot flush %q: %w", schema.Name, err)
	}
	return nil
}
