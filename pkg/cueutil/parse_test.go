// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Doc: {
	name:  string & != ""
	depth: int & >=1
}
`

type testDoc struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	result, err := ParseAndDecodeString[testDoc](testSchema, []byte("name: \"dist\"\ndepth: 2\n"), "#Doc",
		WithFilename("doc.cue"))
	if err != nil {
		t.Fatalf("ParseAndDecode() error = %v", err)
	}
	if result.Value.Name != "dist" || result.Value.Depth != 2 {
		t.Errorf("ParseAndDecode() = %+v, want {Name:dist Depth:2}", *result.Value)
	}
}

func TestParseAndDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		opts       []Option
		wantSubstr string
	}{
		{name: "out of bound", data: "name: \"dist\"\ndepth: 0\n", wantSubstr: "depth"},
		{name: "syntax error", data: "name: \"dist\n", wantSubstr: "doc.cue"},
		{name: "incomplete", data: "name: \"dist\"\n", wantSubstr: "depth"},
		{name: "unknown field", data: "name: \"dist\"\ndepth: 1\nextra: true\n", wantSubstr: "extra"},
		{name: "too large", data: "name: \"dist\"\ndepth: 2\n", opts: []Option{WithMaxFileSize(4)}, wantSubstr: "exceeds maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]Option{WithFilename("doc.cue")}, tt.opts...)
			_, err := ParseAndDecodeString[testDoc](testSchema, []byte(tt.data), "#Doc", opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Errorf("error %q does not mention %q", err, tt.wantSubstr)
			}
		})
	}
}

func TestUnifyAllowsPartialDocuments(t *testing.T) {
	t.Parallel()

	if _, err := Unify([]byte(testSchema), []byte("name: \"dist\"\n"), "#Doc", WithConcrete(false)); err != nil {
		t.Errorf("Unify() with WithConcrete(false) error = %v", err)
	}
}

func TestUnifyMissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := Unify([]byte(testSchema), []byte("name: \"dist\"\n"), "#Missing")
	if err == nil || !strings.Contains(err.Error(), "#Missing") {
		t.Errorf("Unify() error = %v, want mention of #Missing", err)
	}
}
