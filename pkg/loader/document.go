package loader

import (
	"errors"
	"path"
	"strings"
)

// Format is the serialisation of a raw document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document wraps a survey payload, its origin and its canonical JSON form.
type Document struct {
	source Source
	format Format
	raw    []byte
	json   []byte
}

// NewDocument validates raw and converts it to canonical JSON. The format is
// taken from the location's extension, falling back to sniffing the payload.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("loader: source is required")
	}
	return Decode(src, raw, DetectFormat(src.Location(), raw))
}

// Decode builds a Document from an in-memory payload of a known format.
func Decode(src Source, raw []byte, format Format) (Document, error) {
	if src == nil {
		src = SourceFromMemory("")
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Document{}, errors.New("loader: raw document is empty")
	}
	canonical, err := ToJSON(raw, format)
	if err != nil {
		return Document{}, err
	}
	return Document{
		source: src,
		format: format,
		raw:    append([]byte(nil), raw...),
		json:   canonical,
	}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// DetectFormat returns YAML for .yaml/.yml locations and for payloads that do
// not start like a JSON object or array.
func DetectFormat(location string, raw []byte) Format {
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}
	return FormatYAML
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Format reports how the raw payload was serialised.
func (d Document) Format() Format {
	return d.format
}

// Raw returns a copy of the payload as loaded.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// JSON returns a copy of the canonical JSON payload.
func (d Document) JSON() []byte {
	return append([]byte(nil), d.json...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
