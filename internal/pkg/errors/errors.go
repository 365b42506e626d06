package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния (например, сабмит
	// ответов на викторину, которая не является сегодняшней).
	ErrConflict = errors.New("resource state conflict")

	// ErrDependency используется, когда внешняя зависимость (БД, кеш)
	// вернула ошибку. Наружу отдаётся как непрозрачная внутренняя ошибка.
	ErrDependency = errors.New("dependency failure")
)
