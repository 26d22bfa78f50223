// Package codec converts the company record to and from its on-disk
// formats. Every format can encode; JSON, INI and YAML can also decode.
// CSV and plain text are export-only.
package codec

import (
	"errors"
	"fmt"

	"github.com/pigeonworks-llc/company-manager/pkg/company"
)

var (
	// ErrFormat is returned by Decode when the input cannot be parsed
	// as the codec's format.
	ErrFormat = errors.New("malformed input")

	// ErrUnsupported is returned by Decode on export-only formats.
	ErrUnsupported = errors.New("unsupported operation")
)

// Format identifies an on-disk profile format.
type Format string

const (
	FormatJSON Format = "json"
	FormatINI  Format = "ini"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Formats returns all formats in their canonical write order.
func Formats() []Format {
	return []Format{FormatJSON, FormatINI, FormatCSV, FormatYAML, FormatText}
}

// Codec converts between a company record and one serialized format.
type Codec interface {
	// Format identifies the format this codec handles.
	Format() Format

	// Encode renders the record in the codec's format.
	Encode(rec *company.Record) ([]byte, error)

	// Decode parses data in the codec's format into a record. Fields
	// absent from the input keep their default values. Export-only
	// codecs return ErrUnsupported.
	Decode(data []byte) (*company.Record, error)
}

// ForFormat returns the codec for the given format.
func ForFormat(f Format) (Codec, error) {
	switch f {
	case FormatJSON:
		return &JSONCodec{}, nil
	case FormatINI:
		return &INICodec{}, nil
	case FormatCSV:
		return &CSVCodec{}, nil
	case FormatYAML:
		return &YAMLCodec{}, nil
	case FormatText:
		return &TextCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}
