package tui

import (
	"errors"

	"github.com/MKhiriev/codebook-vault/internal/service"
	"github.com/MKhiriev/codebook-vault/internal/validators"
)

// humanizePolicyError maps validation errors to user-facing messages; other
// errors are shown as-is.
func humanizePolicyError(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidUsername):
		return "Имя пользователя: от 1 до 50 символов"
	case errors.Is(err, validators.ErrWeakPassword):
		return "Пароль: 8-32 символа, минимум одна цифра, одна строчная и одна заглавная буква"
	case errors.Is(err, validators.ErrInvalidCodebookName):
		return "Недопустимое имя: до 100 символов, буквы, цифры, _-@$!%*#?& и иероглифы"
	default:
		return err.Error()
	}
}

// humanizeEntryError maps entry save failures to user-facing messages.
func humanizeEntryError(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidAddress):
		return "Адрес: от 1 до 253 символов"
	case errors.Is(err, validators.ErrInvalidNotes):
		return "Заметки: не более 1024 символов"
	case errors.Is(err, service.ErrPasswordTooLong):
		return "Пароль слишком длинный для хранения"
	case errors.Is(err, service.ErrCodebookNotFound):
		return "Записная книжка не найдена"
	default:
		return err.Error()
	}
}
