package importer

import "fmt"

// Report acumula el resultado por fila de una importación. Ninguna fila
// fallida aborta el batch: los errores se cuentan y se listan en orden.
type Report struct {
	SuccessCount int
	ErrorCount   int
	Errors       []string
}

// NewReport crea un reporte vacío
func NewReport() *Report {
	return &Report{Errors: []string{}}
}

// AddSuccess registra una fila importada o actualizada
func (r *Report) AddSuccess() {
	r.SuccessCount++
}

// AddError registra el fallo de una fila, identificada por la etiqueta de su
// clave natural ("CI", "ID", "Producto") y la clave calculada para la fila
func (r *Report) AddError(keyLabel, key string, cause error) {
	r.ErrorCount++
	r.Errors = append(r.Errors, fmt.Sprintf("Fila con %s %s: %v", keyLabel, key, cause))
}

// Message construye el mensaje resumen de la importación
func (r *Report) Message(resource string) string {
	return fmt.Sprintf("Importación completada. %d %s importados/actualizados, %d errores.",
		r.SuccessCount, resource, r.ErrorCount)
}
