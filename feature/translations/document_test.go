package translations

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_PreservesKeyOrder(t *testing.T) {
	input := `{"zeta":"last?","alpha":"first?","@alpha":{"description":"meta"},"@@locale":"en"}`

	doc := NewDocument()
	require.NoError(t, json.Unmarshal([]byte(input), doc))

	assert.Equal(t, []string{"zeta", "alpha", "@alpha", "@@locale"}, doc.Keys())

	out, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
	// Compact round-trip reproduces the input byte-for-byte.
	assert.Equal(t, input, string(out))
}

func TestDocument_MarshalIndent(t *testing.T) {
	doc := NewDocument()
	doc.SetString("greet", "Hi")
	doc.Set("@greet", json.RawMessage(`{"description":"greeting"}`))

	out, err := doc.MarshalIndent("  ")
	require.NoError(t, err)

	want := "{\n" +
		"  \"greet\": \"Hi\",\n" +
		"  \"@greet\": {\n" +
		"    \"description\": \"greeting\"\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, string(out))
}

func TestDocument_SetReplacesInPlace(t *testing.T) {
	doc := NewDocument()
	doc.SetString("a", "1")
	doc.SetString("b", "2")
	doc.SetString("a", "updated")

	assert.Equal(t, []string{"a", "b"}, doc.Keys())
	value, ok := doc.Get("a")
	require.True(t, ok)
	assert.Equal(t, `"updated"`, string(value))
}

func TestDocument_DataKeyCount(t *testing.T) {
	doc := NewDocument()
	doc.SetString("greet", "Hi")
	doc.Set("@greet", json.RawMessage(`{}`))
	doc.SetString("@@locale", "en")

	assert.Equal(t, 3, doc.Len())
	assert.Equal(t, 1, doc.DataKeyCount())
}

func TestDocument_Clone(t *testing.T) {
	doc := NewDocument()
	doc.SetString("a", "1")
	doc.SetString("b", "2")

	clone := doc.Clone()
	clone.SetString("a", "changed")

	original, _ := doc.Get("a")
	assert.Equal(t, `"1"`, string(original))
	assert.Equal(t, doc.Keys(), clone.Keys())
}

func TestLoadDocument_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app_en.arb", `{"greet": `)

	_, err := LoadDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadDocument_NotAnObject(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app_en.arb", `["not","an","object"]`)

	_, err := LoadDocument(path)
	assert.Error(t, err)
}

func TestMetadataKeys(t *testing.T) {
	assert.True(t, IsMetadataKey("@greet"))
	assert.False(t, IsMetadataKey("greet"))
	assert.False(t, IsMetadataKey("@@context"))
	assert.True(t, IsDocumentMetadataKey("@@context"))
	assert.False(t, IsDocumentMetadataKey("@greet"))
	assert.Equal(t, "@greet", MetadataKeyFor("greet"))
}
