package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Коды модуля Student.
	StudentNotFound  failure.ErrorCode = "StudentNotFound"  // Когда ID есть, но в базе нет
	InvalidStudent   failure.ErrorCode = "InvalidStudent"   // Когда вместо студента пришёл nil или мусор
	InvalidStudentID failure.ErrorCode = "InvalidStudentID" // Когда пришел мусор вместо ID
)
