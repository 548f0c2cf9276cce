package table

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/vizset/pkg/errors"
)

// ReadFile reads a table from a .csv or .json file, chosen by extension.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported table file %q (want .csv or .json)", path)
	}
}

// ReadCSV reads a table from CSV with a header row.
//
// Each column is typed as a whole: integers if every non-empty cell parses as
// an integer, then floats, then booleans, otherwise strings. Empty cells are
// null.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "read csv: missing header row")
	}

	header, body := rows[0], rows[1:]
	cols := make([]Column, len(header))
	for j, name := range header {
		cells := make([]string, len(body))
		for i, row := range body {
			cells[i] = row[j]
		}
		cols[j] = Column{Name: name, Values: parseCells(cells)}
	}
	return New(cols...)
}

func parseCells(cells []string) []any {
	parsers := []func(string) (any, bool){
		func(s string) (any, bool) {
			i, err := strconv.ParseInt(s, 10, 64)
			return i, err == nil
		},
		func(s string) (any, bool) {
			f, err := strconv.ParseFloat(s, 64)
			return f, err == nil
		},
		parseBool,
	}

	for _, parse := range parsers {
		if out, ok := parseAll(cells, parse); ok {
			return out
		}
	}
	out := make([]any, len(cells))
	for i, c := range cells {
		if c != "" {
			out[i] = c
		}
	}
	return out
}

func parseAll(cells []string, parse func(string) (any, bool)) ([]any, bool) {
	out := make([]any, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		v, ok := parse(c)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseBool(s string) (any, bool) {
	switch s {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return nil, false
}

// ReadJSON reads a table from a JSON array of objects. Key order of the first
// object that mentions a column decides the column order. Integral numbers
// become int64, other numbers float64.
func ReadJSON(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	var rows []Record
	for dec.More() {
		rec, err := readObject(dec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return FromRecords(rows), nil
}

func readObject(dec *json.Decoder) (Record, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var rec Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read json")
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "read json: expected object key, got %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read json: field %q", key)
		}
		rec = append(rec, Field{Name: key, Value: fromJSON(v)})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return rec, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read json")
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.New(errors.ErrCodeInvalidInput, "read json: expected %q, got %v", want, tok)
	}
	return nil
}

func fromJSON(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, _ := n.Float64()
	return f
}
