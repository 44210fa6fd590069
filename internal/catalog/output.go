package catalog

import (
	"bufio"
	"encoding/json"
	"io"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/awscmds/internal/errors"
)

// Format selects how a catalog is rendered.
type Format string

const (
	// FormatLines prints one "service:command" pair per line.
	FormatLines Format = "lines"
	// FormatJSON prints a JSON array of entries.
	FormatJSON Format = "json"
	// FormatYAML prints a YAML sequence of entries.
	FormatYAML Format = "yaml"
	// FormatTOML prints an array of [[services]] tables.
	FormatTOML Format = "toml"
)

// Formats returns every supported format name.
func Formats() []string {
	return []string{string(FormatLines), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ValidFormat reports whether name is a supported format.
func ValidFormat(name string) bool {
	return slices.Contains(Formats(), name)
}

// tomlDocument is the TOML root; TOML has no top-level arrays.
type tomlDocument struct {
	Services []Entry `toml:"services"`
}

// Write renders cat to w in format f.
func Write(w io.Writer, cat *Catalog, f Format) error {
	switch f {
	case FormatLines, "":
		return writeLines(w, cat)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(cat.Entries()), "encoding JSON")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cat.Entries()); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(tomlDocument{Services: cat.Entries()}), "encoding TOML")
	default:
		return errors.Wrapf(errors.ErrInvalidFormat, "%q", f)
	}
}

func writeLines(w io.Writer, cat *Catalog) error {
	bw := bufio.NewWriter(w)
	for _, pair := range cat.Pairs() {
		if _, err := bw.WriteString(pair + "\n"); err != nil {
			return errors.Wrap(err, "writing catalog")
		}
	}
	return errors.Wrap(bw.Flush(), "writing catalog")
}
