// Package progress keeps per-topic completion counters and persists them
// through a key/value store.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/alexanderramin/tailquest/internal/repository"
)

// StorageKey is the fixed key the whole progress set is stored under.
const StorageKey = "progress"

// TopicSource supplies the ordered topic names and their challenge counts.
type TopicSource interface {
	Names() []string
	TopicLen(name string) int
}

// persistedRecord is the on-disk shape of one topic's counters.
type persistedRecord struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Store holds one ProgressRecord per catalog topic. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.ProgressRecord
	kv      repository.KVStore
	logger  *slog.Logger
}

// Load builds a Store with one zeroed record per topic, then overlays the
// persisted completed counts clipped to [0, total]. Persisted totals and
// topics outside the catalog are ignored. Read and decode failures are
// logged and leave every count at zero.
func Load(ctx context.Context, kv repository.KVStore, topics TopicSource, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	names := topics.Names()
	s := &Store{
		order:   names,
		records: make(map[string]domain.ProgressRecord, len(names)),
		kv:      kv,
		logger:  logger,
	}
	for _, name := range names {
		s.records[name] = domain.ProgressRecord{Topic: name, Total: topics.TopicLen(name)}
	}

	persisted, err := s.read(ctx)
	if err != nil {
		logger.WarnContext(ctx, "progress_load_failed", "error", err.Error())
		return s
	}
	for name, p := range persisted {
		rec, ok := s.records[name]
		if !ok {
			continue
		}
		rec.Completed = p.Completed
		s.records[name] = rec.Clamp()
	}
	return s
}

func (s *Store) read(ctx context.Context) (map[string]persistedRecord, error) {
	if s.kv == nil {
		return nil, nil
	}
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading progress: %w", err)
	}
	var persisted map[string]persistedRecord
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		return nil, fmt.Errorf("decoding progress: %w", err)
	}
	return persisted, nil
}

// RecordCompletion increments the completed count for topic when it is
// below the total, then persists the full set. A failed write is logged and
// the in-memory increment is kept. Returns false for unknown or finished
// topics.
func (s *Store) RecordCompletion(ctx context.Context, topic string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[topic]
	if !ok || rec.Completed >= rec.Total {
		return false
	}
	rec.Completed++
	s.records[topic] = rec

	if err := s.saveLocked(ctx); err != nil {
		s.logger.ErrorContext(ctx, "progress_save_failed", "topic", topic, "error", err.Error())
	}
	return true
}

// TopicProgress returns the record for topic, or a zero record when the
// topic is unknown.
func (s *Store) TopicProgress(topic string) domain.ProgressRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[topic]
	if !ok {
		return domain.ProgressRecord{Topic: topic}
	}
	return rec
}

// TopicPercent returns the rounded completion percentage for topic.
func (s *Store) TopicPercent(topic string) int {
	return s.TopicProgress(topic).Percent()
}

// OverallPercent returns the rounded percentage of all challenges completed
// across topics, 0 when the catalog is empty.
func (s *Store) OverallPercent() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var done, total int
	for _, rec := range s.records {
		done += rec.Completed
		total += rec.Total
	}
	return domain.Percent(done, total)
}

// Records returns every record in catalog order.
func (s *Store) Records() []domain.ProgressRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ProgressRecord, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.records[name])
	}
	return out
}

// Reset zeroes every completed count and persists the result.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, rec := range s.records {
		rec.Completed = 0
		s.records[name] = rec
	}
	return s.saveLocked(ctx)
}

// Save persists the current record set.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// saveLocked persists the full set. Caller must hold s.mu.
func (s *Store) saveLocked(ctx context.Context) error {
	blob, err := s.encodeLocked()
	if err != nil {
		return err
	}
	return s.write(ctx, blob)
}

func (s *Store) encodeLocked() (string, error) {
	out := make(map[string]persistedRecord, len(s.records))
	for name, rec := range s.records {
		out[name] = persistedRecord{Completed: rec.Completed, Total: rec.Total}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encoding progress: %w", err)
	}
	return string(data), nil
}

func (s *Store) write(ctx context.Context, blob string) error {
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Set(ctx, StorageKey, blob); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}
