package service

import "errors"

// Ошибки бизнес-логики. Проверяются через errors.Is на границе HTTP.
var (
	// ErrNotAuthenticated - операция требует загруженного профиля
	ErrNotAuthenticated = errors.New("profile not authenticated")

	// ErrProfileNotFound - профиль с таким id не существует
	ErrProfileNotFound = errors.New("profile not found")

	// ErrLocationUnavailable - не удалось получить местоположение,
	// тревога не создается
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrAlertNotFound - тревога с таким id не существует
	ErrAlertNotFound = errors.New("alert not found")

	// ErrAlertTerminal - тревога уже в другом финальном статусе,
	// переход между resolved и false_alarm запрещен
	ErrAlertTerminal = errors.New("alert already in a terminal status")

	// ErrContactNotFound - контакт с таким id не существует
	ErrContactNotFound = errors.New("contact not found")

	// ErrNameRequired - имя контакта обязательно
	ErrNameRequired = errors.New("contact name is required")

	// ErrPhoneRequired - номер телефона контакта обязателен
	ErrPhoneRequired = errors.New("contact phone number is required")
)
