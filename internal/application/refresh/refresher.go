// Package refresh recarga los listados de flota en segundo plano a
// intervalo fijo, para que la instantánea en memoria no envejezca más de
// un ciclo aunque nadie navegue por la consola.
package refresh

import (
	"context"
	"time"

	"github.com/portusapp/portus-console/pkg/logger"
)

// Loader es una recarga nombrada; típicamente el Load de un caso de uso.
type Loader struct {
	Name string
	Load func(ctx context.Context) error
}

// Refresher ejecuta los loaders registrados cada intervalo.
type Refresher struct {
	interval time.Duration
	loaders  []Loader
	log      *logger.Logger
}

func New(interval time.Duration, log *logger.Logger, loaders ...Loader) *Refresher {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Refresher{interval: interval, loaders: loaders, log: log}
}

// Start lanza el ciclo en un goroutine propio; se detiene al cancelar ctx.
// Los fallos individuales solo se registran: el ciclo nunca muere.
func (r *Refresher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.runAll(ctx)
			}
		}
	}()
}

func (r *Refresher) runAll(ctx context.Context) {
	for _, l := range r.loaders {
		runCtx, cancel := context.WithTimeout(ctx, r.interval)
		if err := l.Load(runCtx); err != nil {
			r.log.Warn().Err(err).Str("loader", l.Name).Msg("recarga periódica falló")
		} else {
			r.log.Debug().Str("loader", l.Name).Msg("recarga periódica completada")
		}
		cancel()
	}
}
