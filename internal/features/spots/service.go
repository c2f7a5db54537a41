// Package spots — service.go содержит бизнес-логику точек раздачи.
// Здесь живёт порядок «очистка → выборка → классификация» и создание
// точки с best-effort геокодированием района.
package spots

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/common"
	"reliefmap/internal/config"
	"reliefmap/internal/features/moderation"
	"reliefmap/internal/geo"
	"reliefmap/internal/metrics"
)

// AreaResolver — граница с обратным геокодером.
// Реализация обязана деградировать сама: при любом сбое вернуть
// метку по умолчанию, а не ошибку. Создание точки от геокодера не зависит.
type AreaResolver interface {
	ResolveArea(ctx context.Context, lat, lng float64) string
}

// Notifier — граница с каналом координации (Telegram).
// Вызовы fire-and-forget: реализация не блокирует и не возвращает ошибок.
type Notifier interface {
	SpotCreated(name, area, category string)
	SpotRemoved(name, reason string)
}

// Service управляет жизненным циклом точек раздачи.
type Service struct {
	repo     *Repository
	policy   *moderation.Policy
	resolver AreaResolver
	notifier Notifier
	cfg      *config.Config
}

// NewService создаёт сервис точек.
func NewService(repo *Repository, policy *moderation.Policy, resolver AreaResolver, notifier Notifier, cfg *config.Config) *Service {
	return &Service{
		repo:     repo,
		policy:   policy,
		resolver: resolver,
		notifier: notifier,
		cfg:      cfg,
	}
}

// Create проверяет черновик и вставляет новую точку.
// Район: если клиент его не передал — спрашиваем геокодер (best-effort,
// сбой даёт метку по умолчанию и не роняет операцию).
func (s *Service) Create(ctx context.Context, d *Draft) (*Spot, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	date := common.GetDhakaDate()
	if d.Date != "" {
		date, _ = common.ParseDay(d.Date) // ошибка исключена: Validate уже разобрал
	}

	var expiry *time.Time
	if d.ExpiryDate != "" {
		e, _ := common.ParseDay(d.ExpiryDate)
		expiry = &e
	}

	area := d.Area
	if area == "" {
		area = s.resolver.ResolveArea(ctx, *d.Lat, *d.Lng)
	}

	spot := &Spot{
		ID:            uuid.NewString(),
		Name:          d.Name,
		Area:          area,
		Category:      d.Category,
		Lat:           *d.Lat,
		Lng:           *d.Lng,
		Date:          date,
		ExpiryDate:    expiry,
		Packets:       d.Packets,
		Notes:         d.Notes,
		ContactName:   d.ContactName,
		ContactNumber: d.ContactNumber,
	}

	if err := s.repo.Create(ctx, spot); err != nil {
		return nil, err
	}

	metrics.SpotsCreatedTotal.Inc()
	s.notifier.SpotCreated(spot.Name, spot.Area, spot.Category)

	log.WithFields(log.Fields{
		"spot_id": spot.ID,
		"area":    spot.Area,
	}).Info("Создана новая точка раздачи")

	return spot, nil
}

// List возвращает точки, видимые на дату refDate.
// Перед выборкой выполняется ленивая очистка: удаляются точки,
// дотянувшие до порога удаления, и точки с истёкшим сроком
// (истечение считается по сегодняшнему дню Дакки, не по refDate).
// viewer — координаты клиента для аннотации расстояния; может быть nil.
func (s *Service) List(ctx context.Context, refDate time.Time, viewer *geo.Point) ([]*View, error) {
	s.reap(ctx)

	rows, err := s.repo.ListVisible(ctx, refDate)
	if err != nil {
		return nil, err
	}

	views := make([]*View, 0, len(rows))
	for _, spot := range rows {
		views = append(views, s.buildView(spot, viewer))
	}
	return views, nil
}

// reap — ленивое удаление при чтении. Сбой очистки не роняет выборку:
// просрочка переживёт до следующего чтения, некорректной видимости
// это не создаёт, потому что фильтр выборки всё равно её отсечёт.
func (s *Service) reap(ctx context.Context) {
	expired, moderated, err := s.repo.PurgeStale(ctx, common.GetDhakaDate(), s.policy.DeleteThreshold())
	if err != nil {
		log.WithError(err).Error("Ошибка ленивой очистки точек")
		return
	}
	if expired > 0 {
		metrics.SpotsReapedTotal.WithLabelValues("expired").Add(float64(expired))
	}
	if len(moderated) > 0 {
		metrics.SpotsReapedTotal.WithLabelValues("moderation").Add(float64(len(moderated)))
		log.WithField("count", len(moderated)).Info("Удалены точки, заминусованные до порога")
		s.announceReaped(moderated)
	}
}

// announceReaped объявляет в координационный чат каждую точку,
// удалённую по итогам голосования.
func (s *Service) announceReaped(names []string) {
	for _, name := range names {
		s.notifier.SpotRemoved(name, "снята по итогам голосования")
	}
}

// buildView аннотирует точку классом доверия и расстоянием до клиента.
func (s *Service) buildView(spot *Spot, viewer *geo.Point) *View {
	v := &View{
		ID:            spot.ID,
		Name:          spot.Name,
		Area:          spot.Area,
		Category:      spot.Category,
		Lat:           spot.Lat,
		Lng:           spot.Lng,
		Date:          common.FormatDay(spot.Date),
		Packets:       spot.Packets,
		Notes:         spot.Notes,
		ContactName:   spot.ContactName,
		ContactNumber: spot.ContactNumber,
		Upvotes:       spot.Upvotes,
		Downvotes:     spot.Downvotes,
		Status:        s.policy.Classify(spot.Upvotes, spot.Downvotes),
		CreatedAt:     spot.CreatedAt,
	}
	if spot.ExpiryDate != nil {
		v.ExpiryDate = common.FormatDay(*spot.ExpiryDate)
	}
	if viewer != nil {
		dist := geo.DistanceKm(*viewer, geo.Point{Lat: spot.Lat, Lng: spot.Lng})
		v.DistanceKm = &dist
		v.TravelMinutes = geo.TravelMinutes(dist, s.cfg.TravelSpeedKmh)
	}
	return v
}

// ForceRemove удаляет точку по решению администратора.
func (s *Service) ForceRemove(ctx context.Context, id string) error {
	spot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	s.notifier.SpotRemoved(spot.Name, "удалена администратором")
	log.WithField("spot_id", id).Warn("Точка удалена администратором")
	return nil
}

// PurgeSweep — ночной проход очистки из планировщика.
// Ленивое удаление при чтении остаётся основным механизмом;
// свип лишь ограничивает, сколько проживёт истёкшая точка,
// которую никто не читает.
func (s *Service) PurgeSweep(ctx context.Context) {
	s.reap(ctx)
}
