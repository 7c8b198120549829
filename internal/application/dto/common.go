package dto

// Límites de paginación para los listados.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PageRequest parámetros de paginación tal como llegan en el query string.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage normaliza los parámetros: limit ausente o fuera de rango cae
// en los límites de arriba, offset negativo en cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse eco de la paginación aplicada en las respuestas de listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo estándar de error: código estable para el cliente
// y mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarningResponse advertencia no fatal, por ejemplo una corrida MRP sobre
// un pedido sin demanda de componentes (422).
type WarningResponse struct {
	Code    string `json:"code"`
	Warning string `json:"warning"`
}
