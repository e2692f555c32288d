package entity

import "time"

// DesignImage boceto/diseño previo de un evento. Solo se persiste la URL;
// la subida del archivo es un colaborador externo.
type DesignImage struct {
	ID         string
	EventID    string
	ImageURL   string
	Notes      string
	UploadedAt time.Time
}

// FinalImage fotografía de la decoración terminada de un evento.
type FinalImage struct {
	ID          string
	EventID     string
	ImageURL    string
	Description string
	UploadedAt  time.Time
}
