package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"teaching-export/internal/domain"
)

// EncodeTeaching writes doc as block-style YAML with two-space indentation.
func EncodeTeaching(w io.Writer, doc domain.TeachingDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}
	return nil
}

// WriteTeachingYAML overwrites outPath with doc. The document is fully
// encoded before the file is touched.
func WriteTeachingYAML(outPath string, doc domain.TeachingDoc) error {
	var buf bytes.Buffer
	if err := EncodeTeaching(&buf, doc); err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: ensure output dir: %w", err)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("export: create yaml: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("export: write yaml: %w", err)
	}
	return f.Close()
}

// ReadTeachingYAML loads a previously written document.
// A missing file yields an empty document and no error.
func ReadTeachingYAML(path string) (domain.TeachingDoc, error) {
	var doc domain.TeachingDoc

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("export: read yaml: %w", err)
	}

	if err := yaml.Unmarshal(b, &doc); err != nil {
		return doc, fmt.Errorf("export: decode yaml %s: %w", path, err)
	}
	return doc, nil
}
