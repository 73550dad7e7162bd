package sheet

import (
	"errors"
	"path"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

const defaultHeaderScan = 10

// Table is a header-keyed view of a spreadsheet.
type Table struct {
	Header []string
	Rows   []map[string]string
}

type DecodeOptions struct {
	// HeaderMarker picks the header row: the first of the leading rows containing this cell.
	// When empty or not found the first row is the header.
	HeaderMarker string
	// HeaderScan bounds how many leading rows are searched for HeaderMarker.
	HeaderScan int
}

type EncodeOptions struct {
	// SheetName names the worksheet of workbook formats.
	SheetName string
}

type Format int

const (
	FormatCSV Format = iota + 1
	FormatXLSX
)

// FormatOf picks the codec from the file extension.
func FormatOf(filePath string) (Format, error) {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return 0, ErrUnsupportedFormat
	}
}

func Decode(filePath string, data []byte, opts DecodeOptions) (*Table, error) {
	format, err := FormatOf(filePath)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	switch format {
	case FormatCSV:
		rows, err = readCSV(data)
	case FormatXLSX:
		rows, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}
	return buildTable(rows, opts), nil
}

// Encode writes header then rows; missing cells are written empty.
func Encode(filePath string, header []string, rows []map[string]string, opts EncodeOptions) ([]byte, error) {
	format, err := FormatOf(filePath)
	if err != nil {
		return nil, err
	}
	matrix := make([][]string, 0, len(rows)+1)
	matrix = append(matrix, header)
	for _, r := range rows {
		line := make([]string, len(header))
		for i, h := range header {
			line[i] = r[h]
		}
		matrix = append(matrix, line)
	}
	switch format {
	case FormatCSV:
		return writeCSV(matrix)
	default:
		return writeXLSX(matrix, opts.SheetName)
	}
}

// Empty returns the bytes of a file holding only the header row.
func Empty(filePath string, header []string, opts EncodeOptions) ([]byte, error) {
	return Encode(filePath, header, nil, opts)
}

func buildTable(rows [][]string, opts DecodeOptions) *Table {
	if len(rows) == 0 {
		return &Table{}
	}

	headerIdx := findHeaderRow(rows, opts)
	header := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		header[i] = strings.TrimSpace(h)
	}

	t := &Table{}
	for _, h := range header {
		if h != "" {
			t.Header = append(t.Header, h)
		}
	}

	for _, row := range rows[headerIdx+1:] {
		rec := make(map[string]string, len(header))
		nonEmpty := false
		for i, h := range header {
			if h == "" {
				continue
			}
			v := ""
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			if v != "" {
				nonEmpty = true
			}
			rec[h] = v
		}
		if nonEmpty {
			t.Rows = append(t.Rows, rec)
		}
	}
	return t
}

func findHeaderRow(rows [][]string, opts DecodeOptions) int {
	if opts.HeaderMarker == "" {
		return 0
	}
	limit := opts.HeaderScan
	if limit <= 0 {
		limit = defaultHeaderScan
	}
	for i := 0; i < len(rows) && i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.TrimSpace(cell) == opts.HeaderMarker {
				return i
			}
		}
	}
	return 0
}
