// Package layoutfile reads layout documents: a screen size and a tree of
// frames and labels with grid options, written in YAML or TOML.
//
//	width: 40
//	height: 10
//	root:
//	  type: frame
//	  border: single
//	  columns: [{index: 0, weight: 1}]
//	  children:
//	    - {type: label, text: Name, row: 0, column: 0, sticky: w}
package layoutfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/germtb/grid/term"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for files whose extension names no format.
var ErrUnknownFormat = errors.New("unknown layout format")

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Document is a decoded layout file.
type Document struct {
	// Width and Height are the screen size. Zero means the terminal size.
	Width  int  `yaml:"width" toml:"width"`
	Height int  `yaml:"height" toml:"height"`
	Root   Node `yaml:"root" toml:"root"`
}

// Node types besides the shortcut types "x", "-" and "^", which are only
// valid inside a row.
const (
	TypeFrame = term.ElementFrame
	TypeLabel = term.ElementLabel
	TypeRow   = term.ElementRow
)

// Node is one element of the tree. Placement fields apply when the node
// is the child of a frame or a row.
type Node struct {
	Type    string `yaml:"type" toml:"type"`
	Name    string `yaml:"name,omitempty" toml:"name,omitempty"`
	Text    string `yaml:"text,omitempty" toml:"text,omitempty"`
	Title   string `yaml:"title,omitempty" toml:"title,omitempty"`
	Border  string `yaml:"border,omitempty" toml:"border,omitempty"`
	Padding int    `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Width   int    `yaml:"width,omitempty" toml:"width,omitempty"`
	Height  int    `yaml:"height,omitempty" toml:"height,omitempty"`

	// Style takes the keys of term.StyleFromMap.
	Style map[string]any `yaml:"style,omitempty" toml:"style,omitempty"`

	Anchor    string          `yaml:"anchor,omitempty" toml:"anchor,omitempty"`
	Propagate *bool           `yaml:"propagate,omitempty" toml:"propagate,omitempty"`
	Columns   []term.SlotSpec `yaml:"columns,omitempty" toml:"columns,omitempty"`
	Rows      []term.SlotSpec `yaml:"rows,omitempty" toml:"rows,omitempty"`

	Row        *int   `yaml:"row,omitempty" toml:"row,omitempty"`
	Column     *int   `yaml:"column,omitempty" toml:"column,omitempty"`
	RowSpan    int    `yaml:"rowspan,omitempty" toml:"rowspan,omitempty"`
	ColumnSpan int    `yaml:"columnspan,omitempty" toml:"columnspan,omitempty"`
	Sticky     string `yaml:"sticky,omitempty" toml:"sticky,omitempty"`

	// PadX and PadY are one amount for both sides or a pair.
	PadX  any `yaml:"padx,omitempty" toml:"padx,omitempty"`
	PadY  any `yaml:"pady,omitempty" toml:"pady,omitempty"`
	IPadX int `yaml:"ipadx,omitempty" toml:"ipadx,omitempty"`
	IPadY int `yaml:"ipady,omitempty" toml:"ipady,omitempty"`

	Children []Node `yaml:"children,omitempty" toml:"children,omitempty"`
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a document. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
