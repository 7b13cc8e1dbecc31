// internal/recorder/recorder.go
package recorder

import (
	"github.com/rs/zerolog"

	"go-garden-defense/internal/event"
)

// Recorder подписывается на игровые события и пишет их в Backend и метрики.
// Ошибки хранилища не останавливают игру, они только логируются.
type Recorder struct {
	backend Backend
	metrics *Metrics
	clock   func() float64 // Игровое время в секундах
	logger  zerolog.Logger
}

func New(backend Backend, metrics *Metrics, clock func() float64, logger zerolog.Logger) *Recorder {
	if clock == nil {
		clock = func() float64 { return 0 }
	}
	return &Recorder{
		backend: backend,
		metrics: metrics,
		clock:   clock,
		logger:  logger.With().Str("component", "recorder").Logger(),
	}
}

// Attach подписывает рекордер на все события, которые он умеет писать.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.SubscribeAll(r,
		event.TowerBuilt,
		event.PadConsumed,
		event.ProjectileFired,
		event.TowerDryFired,
		event.BuildMenuOpened,
		event.BuildMenuClosed,
	)
}

func (r *Recorder) OnEvent(e event.Event) {
	if e.Type == event.PadConsumed {
		// Площадка пишется вместе с башней, здесь только счётчик.
		if r.metrics != nil {
			r.metrics.padConsumed()
		}
		return
	}

	now := r.clock()
	var err error
	switch data := e.Data.(type) {
	case event.TowerBuiltData:
		if r.metrics != nil {
			r.metrics.towerBuilt(data.Kind.String())
		}
		if r.backend != nil {
			err = r.backend.RecordTowerBuilt(&TowerBuiltRecord{
				GameTime: now,
				Tower:    uint64(data.Tower),
				Pad:      uint64(data.Pad),
				Kind:     data.Kind.String(),
				X:        data.Position.X,
				Y:        data.Position.Y,
				Z:        data.Position.Z,
			})
		}
	case event.ShotData:
		if r.metrics != nil {
			r.metrics.shot(data.Kind.String())
		}
		if r.backend != nil {
			err = r.backend.RecordShot(&ShotRecord{
				GameTime:   now,
				Tower:      uint64(data.Tower),
				Target:     uint64(data.Target),
				Projectile: uint64(data.Projectile),
				Kind:       data.Kind.String(),
				DirX:       data.Direction.X,
				DirY:       data.Direction.Y,
				DirZ:       data.Direction.Z,
				Speed:      data.Speed,
			})
		}
	case event.DryFireData:
		if r.metrics != nil {
			r.metrics.dryFire(data.Kind.String())
		}
		if r.backend != nil {
			err = r.backend.RecordDryFire(&DryFireRecord{
				GameTime: now,
				Tower:    uint64(data.Tower),
				Kind:     data.Kind.String(),
			})
		}
	case event.MenuData:
		opened := e.Type == event.BuildMenuOpened
		if r.metrics != nil {
			r.metrics.menu(opened)
		}
		if r.backend != nil {
			err = r.backend.RecordMenu(&MenuRecord{
				GameTime: now,
				Menu:     uint64(data.Menu),
				Opened:   opened,
				Selected: data.Selected,
			})
		}
	default:
		r.logger.Warn().Str("event", string(e.Type)).Msg("unexpected event payload")
		return
	}
	if err != nil {
		r.logger.Error().Err(err).Str("event", string(e.Type)).Msg("failed to record event")
	}
}
