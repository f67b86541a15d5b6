// Package extract turns enforcement-case export files into plain text
// documents for the analysis engines. It handles the formats UYAP exports
// actually contain: plain text, UDF document containers, PDFs and nested
// zip archives. Extraction failures degrade to a skipped document; they
// never abort a batch.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/common"
)

// Document is one logical document with its decoded text. RawText is ""
// when decoding failed; it is never absent.
type Document struct {
	ID       uuid.UUID                `json:"id"`
	Filename string                   `json:"filename"`
	Path     string                   `json:"path"`
	Format   constants.DocumentFormat `json:"format"`
	RawText  string                   `json:"-"`
}

// ExtractFile reads one file from disk and extracts its documents. A zip
// archive yields one document per supported entry; every other format
// yields exactly one.
func ExtractFile(path string) ([]Document, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return nil, common.ExtractionError(path, fmt.Errorf("unsupported extension %q", filepath.Ext(path)))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.ExtractionError(path, err)
	}
	return extractBytes(path, filepath.Base(path), format, data)
}

func extractBytes(path, name string, format constants.DocumentFormat, data []byte) ([]Document, error) {
	switch format {
	case constants.FormatZIP:
		return extractZip(path, data)
	case constants.FormatTXT:
		return single(path, name, format, decodeText(data)), nil
	case constants.FormatUDF:
		text, err := extractUDF(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, common.ExtractionError(path, err)
		}
		return single(path, name, format, text), nil
	case constants.FormatPDF:
		text, err := extractPDF(bytes.NewReader(data))
		if err != nil {
			return nil, common.ExtractionError(path, err)
		}
		return single(path, name, format, text), nil
	}
	return nil, common.ExtractionError(path, fmt.Errorf("unsupported format %q", format))
}

func single(path, name string, format constants.DocumentFormat, text string) []Document {
	return []Document{{
		ID:       uuid.New(),
		Filename: name,
		Path:     path,
		Format:   format,
		RawText:  text,
	}}
}
