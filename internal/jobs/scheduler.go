// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает расписание: ежечасная сверка счётчиков
// с леджером голосов и ночной свип истёкших точек.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/features/spots"
	"reliefmap/internal/features/votes"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron        *cron.Cron
	voteService *votes.Service
	spotService *spots.Service
}

// NewScheduler создаёт планировщик задач с часовым поясом Дакки.
func NewScheduler(voteService *votes.Service, spotService *spots.Service) *Scheduler {
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		log.WithError(err).Warn("Не удалось загрузить Asia/Dhaka, используем UTC+6")
		loc = time.FixedZone("BST", 6*60*60)
	}

	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:        c,
		voteService: voteService,
		spotService: spotService,
	}
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start(ctx context.Context) {
	// Ежечасная сверка счётчиков с леджером.
	// Транзакция голосования дрейфа не создаёт; сверка чинит
	// последствия ручных правок в БД.
	s.cron.AddFunc("15 * * * *", func() {
		fixed, err := s.voteService.ReconcileCounters(ctx)
		if err != nil {
			log.WithError(err).Error("[CRON] Ошибка сверки счётчиков")
			return
		}
		if fixed > 0 {
			log.WithField("fixed", fixed).Warn("[CRON] Счётчики расходились с леджером, исправлено")
		}
	})

	// Ночной свип в 00:10 по Дакке. Ленивая очистка при чтении остаётся
	// основным механизмом; свип лишь добирает точки, которые никто не читает.
	s.cron.AddFunc("10 0 * * *", func() {
		log.Info("[CRON] Ночной свип истёкших точек")
		s.spotService.PurgeSweep(ctx)
	})

	s.cron.Start()
	log.Info("Планировщик задач запущен (Asia/Dhaka)")
}

// Stop останавливает планировщик.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}
