package constants

import (
	"fmt"
	"strings"
)

// DocumentFormat is the declared format of an imported document.
// Extractor dispatch keys off this value, not off content sniffing.
type DocumentFormat string

const (
	FormatTabular DocumentFormat = "TABULAR" // spreadsheets (.xlsx, .xls)
	FormatPDF     DocumentFormat = "PDF"
	FormatWord    DocumentFormat = "WORD" // word-processor files (.doc, .docx)
)

// DocumentFormats holds the allowed formats for the format field in
// imported_documents.
var DocumentFormats = []string{string(FormatTabular), string(FormatPDF), string(FormatWord)}

var extensionFormats = map[string]DocumentFormat{
	"xlsx": FormatTabular,
	"xls":  FormatTabular,
	"pdf":  FormatPDF,
	"doc":  FormatWord,
	"docx": FormatWord,
}

// SupportedExtensions returns the extensions intake will accept,
// lowercase without the dot.
func SupportedExtensions() map[string]struct{} {
	exts := make(map[string]struct{}, len(extensionFormats))
	for ext := range extensionFormats {
		exts[ext] = struct{}{}
	}
	return exts
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FormatForExtension routes a filename extension to a document format.
// Unsupported extensions are rejected at upload time.
func FormatForExtension(ext string) (DocumentFormat, error) {
	format, ok := extensionFormats[NormalizeExt(ext)]
	if !ok {
		return "", fmt.Errorf("unsupported document extension %q", ext)
	}
	return format, nil
}
