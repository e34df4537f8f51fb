// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

type (
	// outputFormat selects how structured command output is printed.
	outputFormat string

	marshalFunc func(any) ([]byte, error)
)

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatTOML outputFormat = "toml"
)

var structuredFormats = map[outputFormat]marshalFunc{
	formatJSON: func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	},
	formatTOML: func(v any) ([]byte, error) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	},
}

func parseOutputFormat(s string, extra ...outputFormat) (outputFormat, error) {
	f := outputFormat(s)
	if f == formatText || slices.Contains(extra, f) {
		return f, nil
	}
	if _, ok := structuredFormats[f]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// writeStructured encodes v in a structured format and writes it to w.
func writeStructured(w io.Writer, f outputFormat, v any) error {
	marshal, ok := structuredFormats[f]
	if !ok {
		return fmt.Errorf("%q is not a structured format", f)
	}
	data, err := marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}
