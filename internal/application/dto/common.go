package dto

// PageRequest paginación para listados (query params page/size, 1-based).
type PageRequest struct {
	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Size son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = 10
	}
}

// Limit devuelve el límite SQL.
func (p PageRequest) Limit() int { return p.Size }

// Offset devuelve el desplazamiento SQL (página 1 = offset 0).
func (p PageRequest) Offset() int { return (p.Page - 1) * p.Size }

// ListRequest listado con filtro opcional por subcadena (query params).
type ListRequest struct {
	Q string `query:"q" validate:"omitempty,max=100"`
	PageRequest
}

// Paging metadatos de página en respuestas de listados.
type Paging struct {
	CurrentPage int   `json:"current_page"`
	Size        int   `json:"size"`
	TotalPage   int64 `json:"total_page"`
}

// NewPaging calcula los metadatos: total_page = ceil(total/size).
func NewPaging(page, size int, total int64) Paging {
	var totalPage int64
	if size > 0 {
		totalPage = (total + int64(size) - 1) / int64(size)
	}
	return Paging{CurrentPage: page, Size: size, TotalPage: totalPage}
}

// DataResponse envoltura de éxito: {"data": ...}.
type DataResponse struct {
	Data any `json:"data"`
}

// PagedResponse envoltura de listado: {"data": [...], "paging": {...}}.
type PagedResponse struct {
	Data   any    `json:"data"`
	Paging Paging `json:"paging"`
}

// ErrorResponse envoltura de error: {"errors": ...}.
type ErrorResponse struct {
	Errors any `json:"errors"`
}
