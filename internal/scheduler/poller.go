// Package scheduler polls the backend for score changes and feeds them to
// the live-update hub. Polling is the only background work the dashboard
// does; everything else is request/response.
package scheduler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/beisbol/dugout/internal/backend"
)

// Broadcaster is where score updates go; the websocket hub implements it.
type Broadcaster interface {
	Broadcast(data []byte)
}

// GameSource lists the current games; the games resource client implements it.
type GameSource interface {
	List(ctx context.Context) ([]backend.Game, error)
}

// GameUpdate is the frame pushed to dashboards when a game appears or its
// score changes.
type GameUpdate struct {
	Type string       `json:"type"`
	Game backend.Game `json:"game"`
}

// Poller re-fetches the games list on a fixed interval and broadcasts the
// rows that changed since the previous poll.
type Poller struct {
	games    GameSource
	sink     Broadcaster
	clock    clockwork.Clock
	interval time.Duration

	known map[int]backend.Game
}

func NewPoller(games GameSource, sink Broadcaster, clock clockwork.Clock, interval time.Duration) *Poller {
	return &Poller{
		games:    games,
		sink:     sink,
		clock:    clock,
		interval: interval,
		known:    make(map[int]backend.Game),
	}
}

// Start polls until the context is cancelled. A failed poll is logged and
// retried on the next tick; there is no backoff.
func (p *Poller) Start(ctx context.Context) {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", p.interval).Msg("game poller started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("game poller stopped")
			return
		case <-ticker.Chan():
			if err := p.Poll(ctx); err != nil {
				log.Warn().Err(err).Msg("game poll failed")
			}
		}
	}
}

// Poll fetches the games list once and broadcasts changed rows.
func (p *Poller) Poll(ctx context.Context) error {
	games, err := p.games.List(ctx)
	if err != nil {
		return err
	}

	next := make(map[int]backend.Game, len(games))
	for _, g := range games {
		next[g.ID] = g
		prev, seen := p.known[g.ID]
		if seen && prev == g {
			continue
		}

		update := GameUpdate{Type: "gameUpdate", Game: g}
		data, err := json.Marshal(update)
		if err != nil {
			log.Error().Err(err).Int("game", g.ID).Msg("encoding game update")
			continue
		}
		p.sink.Broadcast(data)
	}

	p.known = next
	return nil
}
