// Package corpus loads the existing-issue corpus a duplicate check runs
// against. Input is a JSON export of the hostel issue store; records are
// validated against an embedded schema at this boundary so malformed data
// never reaches the similarity engine.
package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hostelfix/dupcheck/pkg/models"
)

//go:embed issues.schema.json
var issuesSchemaJSON string

// MaxDocuments is the default corpus cap. The issue store returns the 100
// most recent non-closed issues; the engine relies on the caller bounding
// corpus size, so the same cap is applied here.
const MaxDocuments = 100

// record mirrors one exported issue. Location fields feed the fallback
// document UUID when the export carries no id.
type record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Hostel      string `json:"hostel"`
	Block       string `json:"block"`
	Room        string `json:"room"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("issues.schema.json", strings.NewReader(issuesSchemaJSON)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("issues.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile schema: %w", err)
			return
		}
		compiledSchema = schema
	})
	return compiledSchema, compileErr
}

// Options control corpus loading.
type Options struct {
	// MaxDocuments caps the corpus size; <= 0 means the default cap.
	MaxDocuments int
	// IncludeClosed keeps closed issues in the corpus.
	IncludeClosed bool
}

// LoadFile reads and parses an issue export from disk.
func LoadFile(path string, opts Options) ([]models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	docs, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", path, err)
	}
	return docs, nil
}

// Parse validates an issue export and coerces it into documents: closed
// issues are dropped (unless IncludeClosed), records without an id get a
// deterministic UUID from their location, and the result is capped.
func Parse(data []byte, opts Options) ([]models.Document, error) {
	value, err := decodeStrictJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode corpus JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load corpus schema: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("corpus schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize corpus JSON: %w", err)
	}
	var records []record
	if err := json.Unmarshal(normalized, &records); err != nil {
		return nil, fmt.Errorf("unmarshal corpus: %w", err)
	}

	max := opts.MaxDocuments
	if max <= 0 {
		max = MaxDocuments
	}

	docs := make([]models.Document, 0, len(records))
	for i, r := range records {
		doc := models.Document{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Status:      r.Status,
			Category:    r.Category,
			Priority:    r.Priority,
		}
		if doc.ID == "" {
			doc.ID = models.DocumentUUID(r.Hostel, r.Block, r.Room, i)
		}
		if !opts.IncludeClosed && !doc.IsOpen() {
			continue
		}
		docs = append(docs, doc)
		if len(docs) == max {
			break
		}
	}
	return docs, nil
}

// decodeStrictJSON rejects trailing content and non-number-safe payloads
// before schema validation.
func decodeStrictJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if err := ensureEOF(dec); err != nil {
		return nil, err
	}
	return value, nil
}

func ensureEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected trailing JSON content")
	}
	return nil
}
