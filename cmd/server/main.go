// Package main — точка входа сервиса карты точек раздачи.
// Загружает конфигурацию, инициализирует приложение и запускает HTTP-сервер.
// Поддерживает graceful shutdown по SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/app"
	"reliefmap/internal/config"
)

func main() {
	// Настраиваем логирование
	setupLogging()

	log.Info("=== Relief Map запускается ===")

	// .env для локальной разработки; в проде переменные приходят из окружения
	if err := godotenv.Load(); err == nil {
		log.Debug("Загружен .env")
	}

	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Не удалось загрузить конфигурацию")
	}

	// Устанавливаем уровень логирования из конфига
	level, err := log.ParseLevel(cfg.AppLogLevel)
	if err == nil {
		log.SetLevel(level)
	}

	// Контекст с отменой для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем приложение (БД, Redis, сервисы, роутер)
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Не удалось инициализировать приложение")
	}
	defer application.DB.Close()
	defer application.Limiter.Close()
	if application.Redis != nil {
		defer application.Redis.Close()
	}

	// Запускаем планировщик задач (cron)
	application.Scheduler.Start(ctx)
	defer application.Scheduler.Stop()

	// HTTP-сервер в отдельной горутине
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: application.Router,
	}
	go func() {
		log.Infof("HTTP-сервер слушает %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP-сервер упал")
		}
	}()

	log.Info("=== Relief Map готов к работе ===")

	// Обрабатываем сигналы остановки (Ctrl+C, docker stop)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Ждём сигнала остановки
	sig := <-quit
	log.Infof("Получен сигнал %s, останавливаемся...", sig)

	// Даём активным запросам дозавершиться
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Ошибка остановки HTTP-сервера")
	}

	// Отменяем контекст — фоновые задачи начнут завершаться
	cancel()

	log.Info("=== Relief Map остановлен ===")
}

// setupLogging настраивает формат логов.
func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
