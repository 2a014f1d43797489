package service

import "errors"

// Ошибки бизнес-слоя. Хендлеры сопоставляют их с HTTP-статусами через errors.Is.
var (
	// ErrNotFound намеренно объединяет "не существует" и "нет доступа",
	// чтобы не раскрывать посторонним факт существования списка.
	ErrNotFound = errors.New("not found or no access")

	// ErrForbidden — роль известна, но операция ей не разрешена.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict — нарушение уникальности (username/email).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
