package result

// Result envuelve el resultado de una operación de negocio: éxito con dato o
// fallo con mensaje. Reemplaza el uso de errores para fallos esperados
// (no encontrado, duplicado, validación); los errores inesperados siguen
// propagándose como error normal hasta el handler superior.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`

	err error // sentinel de dominio para clasificar el fallo (no se serializa)
}

// Ok construye un resultado exitoso con dato.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail construye un resultado fallido a partir de un error de dominio.
// El mensaje visible es err.Error(); el error queda disponible vía Err().
func Fail[T any](err error) Result[T] {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Result[T]{Success: false, Message: msg, err: err}
}

// FailMsg construye un resultado fallido con un mensaje distinto al del error
// (ej. lista de violaciones de validación agregada en un solo string).
func FailMsg[T any](err error, message string) Result[T] {
	return Result[T]{Success: false, Message: message, err: err}
}

// Err devuelve el error de dominio que originó el fallo (nil si Success).
// Permite clasificar con errors.Is en la capa HTTP sin comparar strings.
func (r Result[T]) Err() error {
	return r.err
}
