package todo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/MarkusG/todo-go/internal/apperr"
)

// SchemaVersion is the current export document version.
const SchemaVersion = 1

//go:embed schema.json
var exportSchema string

// Document is the JSON interchange form of a store.
type Document struct {
	SchemaVersion int     `json:"schema_version"`
	Entries       []Entry `json:"entries"`
}

// ValidationError is a schema violation at a specific document path.
type ValidationError struct {
	Path string // dot-notation path to the error location
	Err  error  // underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Export writes the store as a JSON document, entries sorted by index,
// with 2-space indentation and a trailing newline.
func (s *Store) Export(w io.Writer) error {
	entries, err := s.List()
	if err != nil {
		return err
	}

	doc := Document{SchemaVersion: SchemaVersion, Entries: entries}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export document: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: write export document: %w", apperr.ErrIO, err)
	}
	return nil
}

// Import reads a JSON export document, validates it against the
// embedded schema, and appends every entry to the store verbatim.
// Indices are preserved — duplicates are legal store content, and a
// backup/restore round trip must not renumber. Returns the number of
// entries appended.
func (s *Store) Import(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("%w: read import document: %w", apperr.ErrIO, err)
	}

	if err := validateDocument(data); err != nil {
		return 0, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("%w: decode import document: %w", apperr.ErrParse, err)
	}

	file, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return 0, fmt.Errorf("%w: open store file: %w", apperr.ErrIO, err)
	}
	defer file.Close()

	for _, entry := range doc.Entries {
		if _, err := fmt.Fprintf(file, "%s\n", FormatLine(entry)); err != nil {
			return 0, fmt.Errorf("%w: write store file: %w", apperr.ErrIO, err)
		}
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("%w: close store file: %w", apperr.ErrIO, err)
	}
	return len(doc.Entries), nil
}

// validateDocument checks raw JSON against the embedded export schema.
func validateDocument(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("todo-export.schema.json", strings.NewReader(exportSchema)); err != nil {
		return fmt.Errorf("load export schema: %w", err)
	}
	schema, err := compiler.Compile("todo-export.schema.json")
	if err != nil {
		return fmt.Errorf("compile export schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: decode import document: %w", apperr.ErrParse, err)
	}

	if err := schema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return fmt.Errorf("%w: %w", apperr.ErrParse, err)
		}
		return fmt.Errorf("%w: invalid import document: %w", apperr.ErrParse, firstSchemaError(ve))
	}
	return nil
}

// firstSchemaError drills into the deepest cause of a validation error
// and reports it with a readable document path.
func firstSchemaError(err *jsonschema.ValidationError) error {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	return &ValidationError{
		Path: jsonPointerToPath(err.InstanceLocation),
		Err:  fmt.Errorf("%s", err.Message),
	}
}

// jsonPointerToPath converts a JSON Pointer like "/entries/0/index"
// to dot notation like "entries[0].index".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path string
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
