package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"

	"github.com/tkaraca/icra-analiz/constants"
)

// extractZip expands a case-export archive into one document per supported
// entry. Unsupported entries are skipped silently; a broken entry skips
// only itself.
func extractZip(archivePath string, data []byte) ([]Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("zip archive: %w", err)
	}

	var docs []Document
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		format := constants.MapExtToFormat(path.Ext(entry.Name))
		if format == "" || format == constants.FormatZIP {
			// No recursive archive handling; UYAP exports are one level deep.
			continue
		}
		content, err := readZipEntry(entry)
		if err != nil {
			continue
		}
		entryDocs, err := extractBytes(archivePath+"!"+entry.Name, path.Base(entry.Name), format, content)
		if err != nil {
			continue
		}
		docs = append(docs, entryDocs...)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("zip archive holds no supported documents")
	}
	return docs, nil
}

func readZipEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
