package models

import "time"

// Socio representa un socio del club, identificado por su CI
type Socio struct {
	CI                 string     `json:"ci" db:"ci"`
	Nombre             string     `json:"nombre" db:"nombre"`
	Celular            string     `json:"celular" db:"celular"`
	ContactoEmergencia string     `json:"contacto_emergencia" db:"contacto_emergencia"`
	EmergenciaMovil    string     `json:"emergencia_movil" db:"emergencia_movil"`
	FechaNacimiento    *time.Time `json:"fecha_nacimiento,omitempty" db:"fecha_nacimiento"`
	TipoCuota          string     `json:"tipo_cuota" db:"tipo_cuota"`
	Enfermedades       string     `json:"enfermedades" db:"enfermedades"`
	Comentarios        string     `json:"comentarios" db:"comentarios"`
	Activo             bool       `json:"activo" db:"activo"`
	Foto               *string    `json:"foto,omitempty" db:"foto"`
}

// SocioRequest representa el request para crear/actualizar un socio.
// La fecha de nacimiento se acepta como texto libre y se interpreta con los
// mismos formatos que la importación CSV.
type SocioRequest struct {
	CI                 string  `json:"ci" binding:"required"`
	Nombre             string  `json:"nombre" binding:"required"`
	Celular            string  `json:"celular"`
	ContactoEmergencia string  `json:"contacto_emergencia"`
	EmergenciaMovil    string  `json:"emergencia_movil"`
	FechaNacimiento    string  `json:"fecha_nacimiento"`
	TipoCuota          string  `json:"tipo_cuota"`
	Enfermedades       string  `json:"enfermedades"`
	Comentarios        string  `json:"comentarios"`
	Activo             *bool   `json:"activo"`
	Foto               *string `json:"foto"`
}
