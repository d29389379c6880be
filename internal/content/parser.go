package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// DefaultName is the path reported for errors in the embedded document.
const DefaultName = "content.yaml (embedded)"

//go:embed content.yaml
var defaultDocument []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load returns the document at path, or the embedded default when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	return ParseFile(path)
}

// Default parses the embedded content document.
func Default() (*Content, error) {
	return Parse(DefaultName, defaultDocument)
}

// DefaultDocument returns a copy of the embedded YAML.
func DefaultDocument() []byte {
	return bytes.Clone(defaultDocument)
}

// ParseFile loads a content file from disk and validates it.
func ParseFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a content document. Unknown keys are rejected.
func Parse(name string, data []byte) (*Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("document is empty")
		}
		return nil, apperrors.NewParseError(name, extractLine(err), err)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
