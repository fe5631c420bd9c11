package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// APIResponse envoltorio uniforme de todas las respuestas:
// {success, data|error, message?}. Los fallos llevan 4xx para validación,
// not-found y reglas de negocio; 5xx para errores del store o inesperados.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(data any, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

// Fail construye una respuesta de error con mensaje corto legible.
// Los stack traces se quedan en el log del servidor, nunca en el cliente.
func Fail(errMsg string) APIResponse {
	return APIResponse{Success: false, Error: errMsg}
}
