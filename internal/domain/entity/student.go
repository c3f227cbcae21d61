package entity

// Student — внутреннее (storage-facing) представление студента.
// ID равен nil, пока запись не сохранена и база не выдала идентификатор.
type Student struct {
	ID        *int64 `json:"student_id" db:"student_id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Year      int    `json:"year" db:"year"`
}
