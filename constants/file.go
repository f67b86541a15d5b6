package constants

import "strings"

// DocumentFormat is the source-format hint attached to an extracted document.
type DocumentFormat string

const (
	FormatTXT DocumentFormat = "TXT"
	FormatUDF DocumentFormat = "UDF" // UYAP document container
	FormatPDF DocumentFormat = "PDF"
	FormatZIP DocumentFormat = "ZIP" // case export archive
)

// AllowedExtensions holds the file extensions the extraction layer accepts.
var AllowedExtensions = map[string]struct{}{
	"txt": {},
	"udf": {},
	"pdf": {},
	"zip": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat resolves a normalized extension to its document format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) DocumentFormat {
	switch NormalizeExt(ext) {
	case "txt":
		return FormatTXT
	case "udf":
		return FormatUDF
	case "pdf":
		return FormatPDF
	case "zip":
		return FormatZIP
	}
	return ""
}
