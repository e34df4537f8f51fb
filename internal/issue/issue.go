// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	ExecutableUnresolvedId Id = iota + 1
	InterpreterNotFoundId
	InterpreterNotExecutableId
	LaunchFailedId
	UnknownLayoutId
	ConfigLoadFailedId
	HostNotSupportedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the message with a trailing "See also" section when the
// issue carries links.
func (i *Issue) Markdown() string {
	var b strings.Builder
	b.WriteString(string(i.mdMsg))
	links := append(i.DocLinks(), i.extLinks...)
	if len(links) > 0 {
		b.WriteString("\n\n## See also\n")
		for _, link := range links {
			b.WriteString("- <" + string(link) + ">\n")
		}
	}
	return b.String()
}

// Render renders the issue for a terminal using a glamour style name
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	pythonCmdline HttpLink = "https://docs.python.org/3/using/cmdline.html"
	bundleDocs    HttpLink = "https://developer.apple.com/library/archive/documentation/CoreFoundation/Conceptual/CFBundles/BundleTypes/BundleTypes.html"

	executableUnresolvedIssue = &Issue{
		id: ExecutableUnresolvedId,
		mdMsg: `
# The launcher could not locate itself

The launcher asks the operating system for its own path and resolves every
symbolic link in it. That failed, so the bundle root is unknown and nothing
was started.

## Things you can try
- Make sure the application was not moved or deleted while it was starting
- Check that every directory above the application is readable
- If the launcher is reached through a symlink, make sure the link target exists:
~~~
$ ls -l "$(which plover)"
~~~`,
		docLinks: []HttpLink{bundleDocs},
	}

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# Bundled Python interpreter not found

The launcher derived the interpreter path from its own location, but no file
exists there. The bundle is incomplete or was built with a different layout.

## Things you can try
- Reinstall the application from a fresh download
- Compare the bundle against the layout the launcher was built for:
~~~
$ plover-bundle plan /Applications/Plover.app/Contents/MacOS/Plover
$ plover-bundle layouts
~~~
- If the bundle uses the older layout, rebuild the launcher with
  ` + "`-ldflags \"-X .../internal/layout.Selected=legacy\"`",
		docLinks: []HttpLink{bundleDocs},
	}

	interpreterNotExecutableIssue = &Issue{
		id: InterpreterNotExecutableId,
		mdMsg: `
# Bundled Python interpreter is not executable

A file exists at the interpreter path but the launcher cannot run it. The
execute bit may be missing, the binary may target another CPU architecture,
or Gatekeeper may have quarantined the bundle.

## Things you can try
~~~
$ chmod +x <interpreter path>
$ file <interpreter path>
$ xattr -dr com.apple.quarantine /Applications/Plover.app
~~~`,
		extLinks: []HttpLink{pythonCmdline},
	}

	launchFailedIssue = &Issue{
		id: LaunchFailedId,
		mdMsg: `
# Starting Python failed

The operating system refused to replace the launcher with the interpreter.
The error above carries the system's reason.

## Things you can try
- Retry after closing other applications if the system is low on resources
- Run the launcher from a terminal with verbose output:
~~~
$ PLOVER_LAUNCHER_VERBOSE=1 PLOVER_LAUNCHER_LOG_LEVEL=debug /Applications/Plover.app/Contents/MacOS/Plover
~~~`,
		extLinks: []HttpLink{pythonCmdline},
	}

	unknownLayoutIssue = &Issue{
		id: UnknownLayoutId,
		mdMsg: `
# Unknown bundle layout

The requested layout profile is not part of this build.

## Things you can try
~~~
$ plover-bundle layouts
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the launcher configuration

The configuration file named by ` + "`PLOVER_LAUNCHER_CONFIG`" + ` or ` + "`--config`" + `
could not be read or does not match the schema.

## Example
~~~cue
log_level:  "debug"
log_format: "logfmt"
verbose:    true
~~~`,
	}

	hostNotSupportedIssue = &Issue{
		id: HostNotSupportedId,
		mdMsg: `
# Not a macOS host

Application bundles are a macOS concept. Paths can still be planned and
checked here, but the result describes a bundle copied from a Mac.`,
		docLinks: []HttpLink{bundleDocs},
	}

	issues = map[Id]*Issue{
		executableUnresolvedIssue.Id():     executableUnresolvedIssue,
		interpreterNotFoundIssue.Id():      interpreterNotFoundIssue,
		interpreterNotExecutableIssue.Id(): interpreterNotExecutableIssue,
		launchFailedIssue.Id():             launchFailedIssue,
		unknownLayoutIssue.Id():            unknownLayoutIssue,
		configLoadFailedIssue.Id():         configLoadFailedIssue,
		hostNotSupportedIssue.Id():         hostNotSupportedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int { return int(a.id - b.id) })
}

func Get(id Id) *Issue {
	return issues[id]
}
