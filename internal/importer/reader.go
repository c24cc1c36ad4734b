package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row representa una fila de datos de un CSV, indexada por nombre de columna.
type Row struct {
	index  map[string]int
	values []string
}

// Get retorna el valor de la columna sin espacios al borde, o "" si la
// columna no existe en el encabezado.
func (r Row) Get(col string) string {
	if idx, ok := r.index[col]; ok && idx < len(r.values) {
		return strings.TrimSpace(r.values[idx])
	}
	return ""
}

// GetOr retorna el valor de la columna, o fallback si la columna no existe
// en el encabezado. Una columna presente pero vacía retorna "".
func (r Row) GetOr(col, fallback string) string {
	if idx, ok := r.index[col]; ok {
		if idx < len(r.values) {
			return strings.TrimSpace(r.values[idx])
		}
		return ""
	}
	return fallback
}

// ReadRows lee un payload CSV UTF-8 delimitado por comas con fila de
// encabezado y retorna las filas de datos. Tolera un BOM inicial y filas con
// cantidad de campos distinta al encabezado. Solo falla cuando no hay un
// encabezado legible; las filas ilegibles intermedias se saltan.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("el archivo CSV está vacío")
	}
	if err != nil {
		return nil, fmt.Errorf("error leyendo el encabezado del CSV: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var rows []Row
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, Row{index: index, values: rec})
	}

	return rows, nil
}

// skipBOM descarta el BOM UTF-8 si el contenido empieza con uno
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && bytes.Equal(b, []byte{0xEF, 0xBB, 0xBF}) {
		br.Discard(3)
	}
	return br
}
