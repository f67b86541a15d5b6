package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// A UDF file (UYAP's native document format) is a zip container whose
// content.xml holds the document body, usually as CDATA inside a <content>
// element.
func extractUDF(r io.ReaderAt, size int64) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("udf container: %w", err)
	}
	for _, entry := range zr.File {
		if entry.Name != "content.xml" {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return "", fmt.Errorf("udf content.xml: %w", err)
		}
		defer rc.Close()
		return readUDFContent(rc)
	}
	return "", fmt.Errorf("udf container has no content.xml")
}

// readUDFContent collects the character data of every <content> element.
func readUDFContent(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	depth := 0
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("udf xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "content" {
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == "content" && depth > 0 {
				depth--
			}
		case xml.CharData:
			if depth > 0 {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
