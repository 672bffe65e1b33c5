// Package source reads inventory task workbooks in the formats the field
// teams actually send (xlsx and legacy xls) and writes filtered exports back
// out as xlsx.
package source

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is the detected workbook container format.
type Format int

const (
	FormatUnknown Format = iota
	FormatXLSX
	FormatXLS
)

// xlsx files are zip containers, xls files are OLE2 compound documents.
var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Detect sniffs the workbook format from content first and falls back to the
// filename extension. Content wins because uploads are routinely misnamed.
func Detect(data []byte, filename string) Format {
	if bytes.HasPrefix(data, zipMagic) {
		return FormatXLSX
	}
	if bytes.HasPrefix(data, oleMagic) {
		return FormatXLS
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	}
	return FormatUnknown
}
