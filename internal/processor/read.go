package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// StdStream is the path value that selects stdin for input and stdout for output.
const StdStream = "-"

// ReadRecords reads the whole input and splits its top-level JSON array into elements.
func ReadRecords(path string) ([]json.RawMessage, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	return ParseRecords(data)
}

// ParseRecords splits a JSON document holding a top-level array into raw elements.
// The document must be valid UTF-8, since elements are copied to the output unchanged.
func ParseRecords(data []byte) ([]json.RawMessage, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrParse)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrParse)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if records == nil {
		records = []json.RawMessage{}
	}

	return records, nil
}

func readInput(path string) ([]byte, error) {
	if path == StdStream {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrInputNotFound, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	}

	return data, nil
}
