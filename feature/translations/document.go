package translations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	// metadataPrefix marks keys that describe a sibling data key
	// (placeholders, descriptions) rather than being translations.
	metadataPrefix = "@"
	// documentMetadataPrefix marks document-level metadata keys.
	documentMetadataPrefix = "@@"

	// ContextKey is the document-level metadata key recording a document's
	// origin.
	ContextKey = "@@context"
	// MergedContext is the ContextKey value stamped on synthesized merged
	// documents so downstream tooling can tell them from authored files.
	MergedContext = "flutter-gen-builder:merged"
)

// Document is an ARB resource document: an ordered mapping from string keys
// to raw JSON values. Key order is preserved through parsing and
// serialization so that repeated merges produce byte-identical,
// diff-friendly output.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// LoadDocument reads and parses the ARB file at path. Malformed JSON is a
// hard error; a corrupt translation file must not be silently dropped.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource file %s: %w", path, err)
	}
	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse resource file %s: %w", path, err)
	}
	return doc, nil
}

// UnmarshalJSON decodes a JSON object preserving the order its keys appear in.
func (d *Document) UnmarshalJSON(data []byte) error {
	if d.values == nil {
		d.values = make(map[string]json.RawMessage)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("resource document must be a JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		d.Set(key, value)
	}
	_, err = dec.Token() // closing brace
	return err
}

// MarshalJSON serializes the document compactly with keys in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.encode("")
}

// MarshalIndent serializes the document with keys in insertion order and the
// given indentation, matching what a hand-written ARB file looks like.
func (d *Document) MarshalIndent(indent string) ([]byte, error) {
	return d.encode(indent)
}

func (d *Document) encode(indent string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(indent)
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		if indent != "" {
			buf.WriteByte(' ')
		}
		var value bytes.Buffer
		if indent == "" {
			err = json.Compact(&value, d.values[key])
		} else {
			err = json.Indent(&value, d.values[key], indent, indent)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid value for key %q: %w", key, err)
		}
		buf.Write(value.Bytes())
	}
	if len(d.keys) > 0 && indent != "" {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Set stores value under key, replacing the value in place when the key
// already exists and appending otherwise.
func (d *Document) Set(key string, value json.RawMessage) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// SetString stores a JSON string value under key.
func (d *Document) SetString(key, value string) {
	raw, _ := json.Marshal(value)
	d.Set(key, raw)
}

// Get returns the raw value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	value, ok := d.values[key]
	return value, ok
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the document's keys in insertion order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len returns the total number of keys, metadata included.
func (d *Document) Len() int {
	return len(d.keys)
}

// DataKeyCount returns the number of translatable keys, excluding metadata.
func (d *Document) DataKeyCount() int {
	n := 0
	for _, key := range d.keys {
		if !strings.HasPrefix(key, metadataPrefix) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy preserving key order.
func (d *Document) Clone() *Document {
	c := NewDocument()
	for _, key := range d.keys {
		c.Set(key, append(json.RawMessage(nil), d.values[key]...))
	}
	return c
}

// IsMetadataKey reports whether key describes a sibling data key (a single @
// prefix). Document-level @@ keys are not sibling metadata.
func IsMetadataKey(key string) bool {
	return strings.HasPrefix(key, metadataPrefix) && !strings.HasPrefix(key, documentMetadataPrefix)
}

// IsDocumentMetadataKey reports whether key is document-level metadata.
func IsDocumentMetadataKey(key string) bool {
	return strings.HasPrefix(key, documentMetadataPrefix)
}

// MetadataKeyFor returns the metadata key describing the given data key.
func MetadataKeyFor(key string) string {
	return metadataPrefix + key
}
