// Package helptext extracts list sections from the plain-text help pages
// the AWS CLI renders.
//
// The AWS CLI prints its help as man-style text: section headings in upper
// case, list items introduced by an "o " bullet, and bold or underlined words
// drawn with overstrike sequences ("+\b"). Extraction is line based and keyed
// on literal substrings, so it only holds as long as the CLI keeps that
// layout.
package helptext

import (
	"slices"
	"strings"
)

const (
	// ServicesMarker starts the service list in "aws help".
	ServicesMarker = "AVAILABLE SERVICES"

	// CommandsMarker starts the command list in "aws <service> help".
	CommandsMarker = "AVAILABLE COMMANDS"

	// SeeAlsoMarker is the heading that follows the service list.
	SeeAlsoMarker = "SEE ALSO"

	bullet     = "o "
	overstrike = "+\b"
)

// Section names the lines that open and close a region of help text.
// Both are matched as substrings of the trimmed line.
type Section struct {
	Start string
	Stop  string
}

// ServicesSection is the region of "aws help" that lists services.
func ServicesSection() Section {
	return Section{Start: ServicesMarker, Stop: SeeAlsoMarker}
}

// CommandsSection is the region of "aws <service> help" that lists the
// service's commands. The list ends at the first line mentioning the service
// name in upper case, which is where the CLI starts its trailer.
func CommandsSection(service string) Section {
	return Section{Start: CommandsMarker, Stop: strings.ToUpper(service)}
}

type scanState int

const (
	scanning scanState = iota
	collecting
	done
)

// Extract returns the cleaned, non-empty entries of section s in text,
// sorted byte-wise. Duplicates are kept. If the start marker never appears
// the result is nil.
//
// A start-marker line is never emitted, even when seen again while
// collecting.
func Extract(text string, s Section) []string {
	var entries []string
	state := scanning

	for raw := range strings.SplitSeq(text, "\n") {
		if state == done {
			break
		}
		line := strings.TrimSpace(raw)

		if strings.Contains(line, s.Start) {
			state = collecting
			continue
		}
		if state != collecting {
			continue
		}
		if strings.Contains(line, s.Stop) {
			state = done
			continue
		}
		if line == "" {
			continue
		}
		if entry := CleanEntry(line); entry != "" {
			entries = append(entries, entry)
		}
	}

	slices.Sort(entries)
	return entries
}

// CleanEntry strips list-item decoration from a help text line: every "o "
// bullet, then every "+\b" overstrike pair, then surrounding whitespace.
//
// Replacement is global rather than prefix-only so output matches the
// listing the shell tooling was built against.
func CleanEntry(line string) string {
	line = strings.ReplaceAll(line, bullet, "")
	line = strings.ReplaceAll(line, overstrike, "")
	return strings.TrimSpace(line)
}
