package display

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/frameloop/frameloop/internal/model"
)

// Presenter receives the currently active entry each scheduler tick. A nil
// media means nothing is scheduled for this moment, which the presentation
// side renders as a blank display.
type Presenter interface {
	Show(ctx context.Context, media *model.Media)
}

// LogPresenter logs transitions of the active entry. Used when no MQTT broker
// is configured; also keeps dev runs observable. Only changes are logged, not
// every tick.
type LogPresenter struct {
	last *string
}

func NewLogPresenter() *LogPresenter {
	return &LogPresenter{}
}

func (p *LogPresenter) Show(_ context.Context, media *model.Media) {
	var path *string
	if media != nil {
		path = media.Path
	}
	if equal(p.last, path) {
		return
	}
	p.last = path

	if path == nil {
		log.Info().Msg("display cleared, nothing scheduled")
		return
	}
	log.Info().Str("path", *path).Msg("display switched")
}

func equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
