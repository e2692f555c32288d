package dto

// Envelope respuesta estándar del API: {success, message, data}.
// En errores Success es false y Code lleva la categoría (VALIDATION,
// NOT_FOUND, INSUFFICIENT_STOCK...).
type Envelope struct {
	Success bool        `json:"success"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
