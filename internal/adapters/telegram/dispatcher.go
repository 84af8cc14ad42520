package telegram

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"relaybot/internal/app"
	"relaybot/internal/core"
)

// Dispatcher hands decoded updates to the orchestrator and performs the
// resulting sends. Relay deliveries go out concurrently and independently:
// one recipient failing never stops the rest of the batch.
type Dispatcher struct {
	Orch   *app.Orchestrator
	Sender core.Sender
}

func (d *Dispatcher) HandleUpdate(ctx context.Context, upd *Update) {
	ev, ok := ToEvent(upd)
	if !ok {
		return
	}
	cid := uuid.NewString()
	log.Info().Str("module", "telegram.dispatcher").Str("cid", cid).Int64("from", int64(ev.From.ID)).Msg("update received")

	res := d.Orch.Handle(ev)

	if res.Reply != "" {
		if err := d.Sender.SendMessage(ctx, ev.From.ID, res.Reply); err != nil {
			log.Error().Err(err).Str("module", "telegram.dispatcher").Str("cid", cid).Int64("to", int64(ev.From.ID)).Msg("reply send failed")
		}
	}

	if len(res.Deliveries) == 0 {
		return
	}
	var wg sync.WaitGroup
	for _, dl := range res.Deliveries {
		wg.Add(1)
		go func(dl core.Delivery) {
			defer wg.Done()
			if err := d.Sender.SendMessage(ctx, dl.To, dl.Payload); err != nil {
				log.Error().Err(err).Str("module", "telegram.dispatcher").Str("cid", cid).Int64("to", int64(dl.To)).Msg("relay send failed")
			}
		}(dl)
	}
	wg.Wait()
}
