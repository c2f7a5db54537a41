// Package notify отправляет объявления в координационный Telegram-чат:
// появилась новая точка раздачи, точка удалена.
// Отправка fire-and-forget: отдельная горутина со своим таймаутом,
// сбой логируется и никогда не влияет на вызвавшую операцию.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"
)

// Telegram — отправитель уведомлений. Нулевой указатель безопасен:
// все методы тогда ничего не делают (уведомления отключены).
type Telegram struct {
	bot     *telego.Bot
	chatID  int64
	timeout time.Duration
}

// NewTelegram создаёт отправителя. Пустой токен — уведомления отключены,
// возвращается nil (методы nil-safe).
func NewTelegram(token string, chatID int64, timeout time.Duration) (*Telegram, error) {
	if token == "" {
		log.Info("Telegram-уведомления отключены (токен не задан)")
		return nil, nil
	}

	bot, err := telego.NewBot(token, telego.WithDefaultLogger(false, true))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Telegram-бота: %w", err)
	}

	return &Telegram{bot: bot, chatID: chatID, timeout: timeout}, nil
}

// SpotCreated объявляет о новой точке раздачи.
func (t *Telegram) SpotCreated(name, area, category string) {
	text := fmt.Sprintf("Новая точка раздачи: %s (%s)", name, area)
	if category != "" {
		text += fmt.Sprintf(", категория: %s", category)
	}
	t.send(text)
}

// SpotRemoved объявляет об удалении точки.
func (t *Telegram) SpotRemoved(name, reason string) {
	t.send(fmt.Sprintf("Точка раздачи снята с карты: %s (%s)", name, reason))
}

// send отправляет сообщение в фоне с ограниченным таймаутом.
func (t *Telegram) send(text string) {
	if t == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()

		_, err := t.bot.SendMessage(ctx, &telego.SendMessageParams{
			ChatID: telego.ChatID{ID: t.chatID},
			Text:   text,
		})
		if err != nil {
			log.WithError(err).Warn("Не удалось отправить Telegram-уведомление")
		}
	}()
}
