package taskgen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Each line is a standalone JSON object followed by ",\n". The file is a
// stream of objects, not a JSON array, and existing consumers split on
// the "},"-boundaries, so the layout has to stay byte-for-byte stable:
//
//	{"region": 1, "requestType": "STANDARD", "atmId": 4711},
var (
	regionPrefix      = []byte(`{"region": `)
	requestTypePrefix = []byte(`, "requestType": "`)
	atmIDPrefix       = []byte(`", "atmId": `)
	lineSuffix        = []byte("},\n")
)

// AppendTask appends the encoded line for t to dst.
func AppendTask(dst []byte, t Task) []byte {
	dst = append(dst, regionPrefix...)
	dst = strconv.AppendInt(dst, int64(t.Region), 10)
	dst = append(dst, requestTypePrefix...)
	dst = append(dst, t.RequestType...)
	dst = append(dst, atmIDPrefix...)
	dst = strconv.AppendInt(dst, int64(t.AtmID), 10)
	return append(dst, lineSuffix...)
}

// DecodeLine parses one line of a generated file. The trailing newline is
// optional, the trailing comma is not.
func DecodeLine(line []byte) (Task, error) {
	line = bytes.TrimRight(line, "\r\n")
	obj, ok := bytes.CutSuffix(line, []byte(","))
	if !ok {
		return Task{}, fmt.Errorf("%w: missing trailing comma", ErrMalformedLine)
	}

	dec := json.NewDecoder(bytes.NewReader(obj))
	dec.DisallowUnknownFields()

	var t Task
	if err := dec.Decode(&t); err != nil {
		return Task{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	if dec.More() {
		return Task{}, fmt.Errorf("%w: trailing data after object", ErrMalformedLine)
	}
	if err := t.Validate(); err != nil {
		return Task{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	return t, nil
}

// ReadFile decodes every line of a generated file in order.
func ReadFile(filename string, fn func(Task) error) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		t, err := DecodeLine(scanner.Bytes())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := fn(t); err != nil {
			return err
		}
	}
	return scanner.Err()
}
