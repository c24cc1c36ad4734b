package importer

import (
	"strings"
	"time"
)

// dateFormats son los formatos de fecha aceptados, probados en orden:
// ISO, día/mes/año con "/" y día/mes/año con "-".
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// ParseDate interpreta una fecha en texto libre. Retorna la primera
// interpretación válida según los formatos soportados, o nil si el texto
// está vacío o no coincide con ninguno. Nunca falla; es una fecha de
// calendario, sin manejo de zona horaria.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return &t
		}
	}

	return nil
}
