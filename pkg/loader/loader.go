package loader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dicklesworthstone/cats_viewer/pkg/model"

	"gopkg.in/yaml.v3"
)

//go:embed default_content.yaml
var defaultContent []byte

// ErrUnsupportedFormat is returned for content files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported content format")

// Default returns the built-in page content.
func Default() (model.Content, error) {
	var c model.Content
	if err := decodeYAML(bytes.NewReader(defaultContent), &c); err != nil {
		return model.Content{}, fmt.Errorf("failed to decode default content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return model.Content{}, fmt.Errorf("default content: %w", err)
	}
	return c, nil
}

// LoadContent reads page content from a YAML (.yaml, .yml) or JSON (.json)
// file. Sections the file omits keep their default values. The result is
// validated, so an empty image or fact list is reported here.
func LoadContent(path string) (model.Content, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return model.Content{}, fmt.Errorf("no content file found at %s", path)
	}

	c, err := Default()
	if err != nil {
		return model.Content{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to open content file: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(file, &c)
	case ".json":
		dec := json.NewDecoder(file)
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	default:
		return model.Content{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return model.Content{}, fmt.Errorf("error reading content file %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return model.Content{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Resolve returns the content at path, or the default content when path is empty.
func Resolve(path string) (model.Content, error) {
	if path == "" {
		return Default()
	}
	return LoadContent(path)
}

func decodeYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	return dec.Decode(v)
}
