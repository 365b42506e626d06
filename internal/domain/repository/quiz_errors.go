package repository

import "errors"

var (
	// ErrQuizDateTaken означает, что викторина на эту дату уже вставлена
	// конкурентным генератором. Первый успешный insert побеждает.
	ErrQuizDateTaken = errors.New("quiz already exists for this date")
)
