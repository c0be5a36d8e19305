package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"
)

var ErrMalformedSnapshot = errors.New("malformed snapshot")

// readSnapshot decodes the JSON array stored at filename. A missing file
// is reported with an error satisfying errors.Is(err, fs.ErrNotExist).
func readSnapshot(filename string) ([]any, error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decodeSnapshot(bufio.NewReaderSize(f, 1024*1024))
}

func decodeSnapshot(r io.Reader) ([]any, error) {

	d := jsontext.NewDecoder(r, jsonOptions)

	begin, err := d.ReadToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedSnapshot, err.Error())
	}
	if begin.Kind() != '[' {
		return nil, fmt.Errorf("%w: top level value is '%s', not an array", ErrMalformedSnapshot, begin.Kind())
	}

	records := []any{}
	for d.PeekKind() != ']' {
		var record any
		err := json.UnmarshalDecode(d, &record, jsonOptions)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %s", ErrMalformedSnapshot, len(records), err.Error())
		}
		records = append(records, record)
	}

	_, err = d.ReadToken() // closing bracket
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedSnapshot, err.Error())
	}

	_, err = d.ReadToken()
	if err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after array", ErrMalformedSnapshot)
	}

	return records, nil
}

func encodeSnapshot(w io.Writer, seq *sequence) error {

	e := jsontext.NewEncoder(w, jsonOptions)

	err := e.WriteToken(jsontext.ArrayStart)
	if err != nil {
		return err
	}

	seq.Traverse(func(i int, v any) bool {
		err = json.MarshalEncode(e, v, jsonOptions, json.Deterministic(true))
		if err != nil {
			err = fmt.Errorf("record %d: %w", i, err)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	return e.WriteToken(jsontext.ArrayEnd)
}

// writeSnapshot replaces filename with the JSON array of seq. Content is
// written to a uniquely named sibling and renamed over the target, so
// concurrent writers never interleave and the last rename wins.
func writeSnapshot(filename string, seq *sequence) error {

	tmp := filename + "." + uuid.New().String() + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("open snapshot file: %w", err)
	}

	buffer := bufio.NewWriterSize(f, 1024*1024)
	err = encodeSnapshot(buffer, seq)
	if err == nil {
		err = buffer.Flush()
	}
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode snapshot: %w", err)
	}

	err = f.Close()
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close snapshot file: %w", err)
	}

	err = os.Rename(tmp, filename)
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename snapshot file: %w", err)
	}

	return nil
}
