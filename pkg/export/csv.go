// Package export serializa tablas a CSV, con opción de codificar en
// windows-1252 para que Excel en Windows abra los acentos bien.
package export

import (
	"bytes"
	"encoding/csv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CSV serializa las filas (la primera suele ser el encabezado) en UTF-8.
func CSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVWindows1252 serializa como CSV y transcodifica a windows-1252.
// Los caracteres fuera del charset se reemplazan en lugar de fallar.
func CSVWindows1252(records [][]string) ([]byte, error) {
	utf8CSV, err := CSV(records)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	encoder := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	w := transform.NewWriter(&buf, encoder)
	if _, err := w.Write(utf8CSV); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
