// Package export writes the todo list to a file in one of the supported formats.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/model"
)

// Format selects the export encoding.
type Format int

const (
	JSON Format = iota + 1
	Text
	YAML
)

// ErrUnknownFormat is returned for a selector that names no format.
var ErrUnknownFormat = errors.New("unknown export format")

// Fixed target file per format.
const (
	jsonFileName = "todos.json"
	textFileName = "todos.txt"
	yamlFileName = "todos.yaml"
)

// ParseFormat maps a menu selector ("1", "2", "3") to a Format.
func ParseFormat(selector string) (Format, error) {
	switch selector {
	case "1":
		return JSON, nil
	case "2":
		return Text, nil
	case "3":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, selector)
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Text:
		return "text"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FileName is the fixed file name used for f.
func (f Format) FileName() string {
	switch f {
	case JSON:
		return jsonFileName
	case Text:
		return textFileName
	case YAML:
		return yamlFileName
	}
	return ""
}

// Write encodes todos in format f into dir and returns the written path.
// todos is only read.
func Write(dir string, f Format, todos []model.Todo) (string, error) {
	if todos == nil {
		todos = []model.Todo{}
	}

	var (
		b   []byte
		err error
	)
	switch f {
	case JSON:
		b, err = encodeJSON(todos)
	case Text:
		b = encodeText(todos)
	case YAML:
		b, err = encodeYAML(todos)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return "", err
	}

	p := filepath.Join(dir, f.FileName())
	if err := writeFile(p, b); err != nil {
		return "", err
	}
	return p, nil
}

func encodeJSON(todos []model.Todo) ([]byte, error) {
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	if err := validate(b); err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func encodeText(todos []model.Todo) []byte {
	var buf bytes.Buffer
	for i, t := range todos {
		buf.WriteString(t.Line(i + 1))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func encodeYAML(todos []model.Todo) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(todos); err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFile(p string, b []byte) error {
	file, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := file.Write(b); err != nil {
		file.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
