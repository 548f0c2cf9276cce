package dataset

import (
	"strings"

	"github.com/matzehuels/vizset/pkg/errors"
)

// Format selects the wire format of a dataset.
type Format string

const (
	// FormatJSON is the row-oriented JSON edge list.
	FormatJSON Format = "json"
	// FormatVGraph is the typed columnar VectorGraph message.
	FormatVGraph Format = "vgraph"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatVGraph}

// Validate returns a CONFIGURATION error for an unknown format.
func (f Format) Validate() error {
	for _, known := range Formats {
		if f == known {
			return nil
		}
	}
	return errors.New(errors.ErrCodeConfiguration, "Unknown mode: %s", string(f))
}

// ParseFormat parses a format name, ignoring case and surrounding space.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}
