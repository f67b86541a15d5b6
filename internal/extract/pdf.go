package extract

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF pulls the text of every page out of a PDF's content streams.
// Good enough for the machine-generated PDFs UYAP produces; scanned
// page images are out of scope (no OCR).
func extractPDF(rs io.ReadSeeker) (string, error) {
	ctx, err := api.ReadValidateAndOptimize(rs, model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		contentReader, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil || contentReader == nil {
			continue
		}
		content, err := io.ReadAll(contentReader)
		if err != nil {
			continue
		}
		sb.WriteString(contentStreamText(string(content)))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// contentStreamText collects the literal strings of a PDF content stream.
// Text drawn via Tj/TJ sits in parenthesized literals; escapes and nested
// parentheses follow the PDF string grammar.
func contentStreamText(content string) string {
	var sb strings.Builder
	for i := 0; i < len(content); {
		if content[i] != '(' {
			i++
			continue
		}
		literal, next := scanLiteral(content, i)
		if next == i {
			i++
			continue
		}
		sb.WriteString(fixMojibake(unescapeLiteral(literal)))
		sb.WriteString("\n")
		i = next
	}
	return sb.String()
}

// scanLiteral returns the contents of the parenthesized string starting at
// start and the index just past its closing parenthesis.
func scanLiteral(content string, start int) (string, int) {
	var sb strings.Builder
	depth := 0
	for i := start; i < len(content); i++ {
		ch := content[i]
		if ch == '\\' && i+1 < len(content) {
			sb.WriteByte(ch)
			sb.WriteByte(content[i+1])
			i++
			continue
		}
		switch ch {
		case '(':
			depth++
			if depth > 1 {
				sb.WriteByte(ch)
			}
		case ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(ch)
		default:
			if depth > 0 {
				sb.WriteByte(ch)
			}
		}
	}
	return sb.String(), start
}

// unescapeLiteral resolves PDF string escape sequences, including octal
// codes.
func unescapeLiteral(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b', 'f':
			// formatting controls, irrelevant for matching
		case '(', ')', '\\':
			sb.WriteByte(s[i])
		default:
			if s[i] >= '0' && s[i] <= '7' {
				end := i + 1
				for end < len(s) && end < i+3 && s[end] >= '0' && s[end] <= '7' {
					end++
				}
				if val, err := strconv.ParseInt(s[i:end], 8, 16); err == nil {
					sb.WriteByte(byte(val))
				}
				i = end - 1
			} else {
				sb.WriteByte(s[i])
			}
		}
	}
	return sb.String()
}
