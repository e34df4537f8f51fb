// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ShellCommand renders argv as a single bash command line with every word
// quoted only where needed.
func ShellCommand(argv []string) (string, error) {
	words := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("quote %q: %w", arg, err)
		}
		words = append(words, quoted)
	}
	return strings.Join(words, " "), nil
}

// ShellCommand renders the request's argv; see ShellCommand.
func (r *Request) ShellCommand() (string, error) {
	return ShellCommand(r.Argv)
}
