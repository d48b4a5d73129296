package component

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/spots/pkg/errors"
)

// SchemaVersion is the descriptor document version this package produces.
// Documents with the same major version are accepted.
const SchemaVersion = "v1.0.0"

// Document is the top-level shape of a descriptor payload.
//
//	version: v1
//	components:
//	  - kind: carousel
//	    layout: {itemsPerRow: 2, spacing: 8}
//	    items:
//	      - {title: One, size: {width: 120, height: 80}}
type Document struct {
	Version    string      `yaml:"version,omitempty" json:"version,omitempty"`
	Components []Component `yaml:"components" json:"components"`
}

// UnmarshalYAML accepts a "spacing" shorthand that sets both item and line spacing.
// Explicit itemSpacing/lineSpacing keys win over the shorthand.
func (l *Layout) UnmarshalYAML(node *yaml.Node) error {
	type plain Layout
	var raw struct {
		plain   `yaml:",inline"`
		Spacing *float64 `yaml:"spacing"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*l = Layout(raw.plain)
	if raw.Spacing != nil {
		if !hasKey(node, "itemSpacing") {
			l.ItemSpacing = *raw.Spacing
		}
		if !hasKey(node, "lineSpacing") {
			l.LineSpacing = *raw.Spacing
		}
	}
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Decode parses a YAML or JSON descriptor document.
func Decode(data []byte) ([]Component, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, decodeErr(err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, decodeErr(err)
	}
	for i := range doc.Components {
		if err := validate(i, &doc.Components[i]); err != nil {
			return nil, decodeErr(err)
		}
		doc.Components[i].Reindex()
	}
	return doc.Components, nil
}

// DecodeFile reads and decodes the descriptor document at path.
func DecodeFile(path string) ([]Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.SpotError{Op: "component.DecodeFile", Kind: errors.KindDecode, Err: err}
	}
	return Decode(data)
}

// MustDecode is like Decode but panics on error. Use it for descriptors
// embedded in the program, where a failure is a programming error.
func MustDecode(data []byte) []Component {
	components, err := Decode(data)
	if err != nil {
		panic(fmt.Sprintf("component.MustDecode: %v", err))
	}
	return components
}

// Encode renders components as a versioned YAML document.
func Encode(components []Component) ([]byte, error) {
	return yaml.Marshal(Document{Version: SchemaVersion, Components: components})
}

func decodeErr(err error) error {
	return &errors.SpotError{Op: "component.Decode", Kind: errors.KindDecode, Err: err}
}

func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &errors.DecodeError{Path: "version", Reason: "not a semantic version", Got: version}
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return &errors.DecodeError{
			Path:   "version",
			Reason: "unsupported major version, want " + semver.Major(SchemaVersion),
			Got:    version,
		}
	}
	return nil
}

func validate(i int, c *Component) error {
	path := fmt.Sprintf("components[%d]", i)
	if c.Layout.ItemsPerRow < 0 {
		return &errors.DecodeError{Path: path + ".layout.itemsPerRow", Reason: "must not be negative", Got: c.Layout.ItemsPerRow}
	}
	if c.Layout.ItemSpacing < 0 || c.Layout.LineSpacing < 0 {
		return &errors.DecodeError{Path: path + ".layout", Reason: "spacing must not be negative"}
	}
	for j, item := range c.Items {
		if item.Size.Width < 0 || item.Size.Height < 0 {
			return &errors.DecodeError{Path: fmt.Sprintf("%s.items[%d].size", path, j), Reason: "must not be negative", Got: item.Size}
		}
	}
	return nil
}
