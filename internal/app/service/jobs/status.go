package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/YoavDdev/studio-boaz-backend/internal/platform/kvstore"
)

// Status is the persisted outcome of the latest run of one job. It lives in
// the shared kv store so it survives restarts and is visible from every
// instance.
type Status struct {
	Job        string    `json:"job"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Processed  int       `json:"processed"`
	Mutated    int       `json:"mutated"`
	Failed     int       `json:"failed"`
}

func statusKey(job string) string { return "jobs:status:" + job }

func (s *Service) recordStatus(ctx context.Context, st Status) {
	b, err := json.Marshal(st)
	if err != nil {
		s.log.Errorw("failed to marshal job status", "job", st.Job, "err", err)
		return
	}
	if err := s.kv.Set(ctx, statusKey(st.Job), string(b), 0); err != nil {
		s.log.Errorw("failed to store job status", "job", st.Job, "err", err)
	}
}

// JobStatus returns the latest recorded run of job, or nil if it never ran.
func (s *Service) JobStatus(ctx context.Context, job string) (*Status, error) {
	v, err := s.kv.Get(ctx, statusKey(job))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load job status: %w", err)
	}
	var st Status
	if err := json.Unmarshal([]byte(v), &st); err != nil {
		return nil, fmt.Errorf("failed to decode job status: %w", err)
	}
	return &st, nil
}
