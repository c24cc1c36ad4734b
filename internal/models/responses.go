package models

// ImportResponse representa el resultado de una importación CSV.
// El status HTTP es 200 aunque algunas filas hayan fallado; los errores por
// fila viajan en la lista, no como fallo del batch.
type ImportResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// MessageResponse representa una respuesta con un mensaje simple
type MessageResponse struct {
	Message string `json:"message"`
}

// DashboardStats representa las estadísticas del dashboard
type DashboardStats struct {
	SociosActivos         int `json:"socios_activos"`
	ProductosEnInventario int `json:"productos_en_inventario"`
}
