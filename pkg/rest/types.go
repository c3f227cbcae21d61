// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// Student Транспортное представление студента. Идентификатор опционален:
// у ещё не сохранённого студента его нет.
type Student struct {
	ID        *int64 `json:"studentId,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Year      int    `json:"year"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
