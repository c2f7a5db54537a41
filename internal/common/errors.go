// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях движка.
// Эти ошибки позволяют HTTP-обработчикам различать типы проблем
// и возвращать клиенту корректный статус.
package common

import "errors"

// Ошибки валидации (операция прерывается, состояние не меняется)
var (
	// ErrEmptyName — у точки раздачи не указано название
	ErrEmptyName = errors.New("название точки не может быть пустым")
	// ErrMissingCoordinates — у точки не указаны координаты
	ErrMissingCoordinates = errors.New("координаты точки не указаны")
	// ErrEmptyComment — попытка добавить пустой комментарий
	ErrEmptyComment = errors.New("текст комментария не может быть пустым")
	// ErrInvalidDate — дата не в формате 2006-01-02
	ErrInvalidDate = errors.New("некорректная дата, ожидается формат ГГГГ-ММ-ДД")
	// ErrInvalidDirection — направление голоса не up и не down
	ErrInvalidDirection = errors.New("направление голоса должно быть up или down")
	// ErrEmptyUserID — не передан идентификатор пользователя
	ErrEmptyUserID = errors.New("идентификатор пользователя не указан")
)

// Ошибки поиска
var (
	// ErrSpotNotFound — точка раздачи не найдена (или уже удалена)
	ErrSpotNotFound = errors.New("точка раздачи не найдена")
)

// Ошибки конкурентного доступа
var (
	// ErrVoteConflict — два голоса столкнулись в одной транзакции.
	// Сервис повторяет операцию ограниченное число раз, прежде чем
	// вернуть эту ошибку наружу.
	ErrVoteConflict = errors.New("конфликт одновременного голосования")
	// ErrAlreadyVoted — пользователь уже голосовал за эту точку.
	// По принятой политике повторный голос снимает/меняет предыдущий,
	// поэтому сервис эту ошибку не возвращает. Оставлена как рычаг:
	// если когда-нибудь понадобится запретить переголосование.
	ErrAlreadyVoted = errors.New("вы уже голосовали за эту точку")
)

// Ошибки админки
var (
	// ErrWrongPassword — неверный пароль администратора
	ErrWrongPassword = errors.New("неверный пароль")
	// ErrTooManyAttempts — слишком много неудачных попыток входа
	ErrTooManyAttempts = errors.New("слишком много попыток, подождите 1 час")
)
