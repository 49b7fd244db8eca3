package translations

import "strings"

// MergeStats classifies merged data keys for reporting. Metadata keys are
// not counted; they travel with their data key.
type MergeStats struct {
	// NewKeys lists extension keys absent from the base document.
	NewKeys []string
	// OverriddenKeys lists keys present on both sides where the extension
	// value replaced the base value.
	OverriddenKeys []string
}

// MergeFiles loads the base and extension resource files (either path may be
// empty) and merges them. It returns a nil document when neither file was
// given or when the merged result carries no translatable keys; the caller
// reports such locales as warnings and writes nothing. A parse failure is
// fatal for this locale and propagates.
func MergeFiles(basePath, extensionPath string) (*Document, MergeStats, error) {
	var stats MergeStats
	if basePath == "" && extensionPath == "" {
		return nil, stats, nil
	}

	var base, extension *Document
	var err error
	if basePath != "" {
		if base, err = LoadDocument(basePath); err != nil {
			return nil, stats, err
		}
	}
	if extensionPath != "" {
		if extension, err = LoadDocument(extensionPath); err != nil {
			return nil, stats, err
		}
	}

	merged, stats := MergeDocuments(base, extension)
	if merged.DataKeyCount() == 0 {
		return nil, stats, nil
	}
	return merged, stats, nil
}

// MergeDocuments overlays the extension document on top of the base document.
// For keys present on both sides the extension value wins, and a data key's
// metadata key is carried over together with it. The result is stamped with
// the merged-document @@context marker. Either argument may be nil.
func MergeDocuments(base, extension *Document) (*Document, MergeStats) {
	var stats MergeStats

	merged := NewDocument()
	if base != nil {
		merged = base.Clone()
	}

	if extension != nil {
		for _, key := range extension.Keys() {
			value, _ := extension.Get(key)
			if IsMetadataKey(key) {
				// Carried alongside its data key when the extension restates
				// it; a metadata-only override still overlays the base's.
				if extension.Has(strings.TrimPrefix(key, metadataPrefix)) {
					continue
				}
				merged.Set(key, value)
				continue
			}
			if IsDocumentMetadataKey(key) {
				merged.Set(key, value)
				continue
			}
			if merged.Has(key) {
				stats.OverriddenKeys = append(stats.OverriddenKeys, key)
			} else {
				stats.NewKeys = append(stats.NewKeys, key)
			}
			merged.Set(key, value)
			if meta, ok := extension.Get(MetadataKeyFor(key)); ok {
				merged.Set(MetadataKeyFor(key), meta)
			}
		}
	}

	merged.SetString(ContextKey, MergedContext)
	return merged, stats
}
