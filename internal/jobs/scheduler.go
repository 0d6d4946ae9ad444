package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler periodically enqueues a full rating refresh onto the
// stream the Worker consumes. Review mutations enqueue targeted
// refreshes themselves; the cron sweep catches anything missed.
type Scheduler struct {
	cron   *cron.Cron
	queue  *redis.Client
	stream string
	spec   string
	log    zerolog.Logger
}

func NewScheduler(queue *redis.Client, stream string, spec string, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:   c,
		queue:  queue,
		stream: stream,
		spec:   spec,
		log:    log,
	}
}

func (s *Scheduler) Start() error {
	if s.queue == nil {
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.enqueueFullRefresh); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for in-flight cron jobs to finish, up to a bound.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) enqueueFullRefresh() {
	err := s.queue.XAdd(context.Background(), &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{"game_id": ""},
	}).Err()
	if err != nil {
		s.log.Error().Err(err).Msg("enqueue rating refresh failed")
	}
}
