package storage

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"sync"
	"time"

	"video-library/internal/models"

	"github.com/google/uuid"
)

// VideoStore is the process-lifetime video collection. It is seeded once
// from a JSON file and only ever grows by Create; nothing is written back.
type VideoStore struct {
	mu     sync.RWMutex
	videos []models.Video

	now   func() time.Time
	newID func() string
	rng   *rand.Rand
}

type Option func(*VideoStore)

// WithClock sets the source of created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *VideoStore) { s.now = now }
}

// WithIDGenerator replaces the default "vid-<uuid>" id generator. The
// generator must return a value that is unique for the process lifetime.
func WithIDGenerator(gen func() string) Option {
	return func(s *VideoStore) { s.newID = gen }
}

// WithRand sets the generator used for placeholder duration and views.
func WithRand(r *rand.Rand) Option {
	return func(s *VideoStore) { s.rng = r }
}

func NewVideoStore(opts ...Option) *VideoStore {
	s := &VideoStore{
		videos: []models.Video{},
		now:    time.Now,
		newID:  func() string { return "vid-" + uuid.NewString() },
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadSeed replaces the collection with the contents of the JSON file at
// path, sorted newest first. On any error the store is left empty and the
// error is returned so the caller can log it and keep running.
func (s *VideoStore) LoadSeed(path string) error {
	videos, err := readSeed(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.videos = []models.Video{}
		return err
	}
	s.videos = videos
	return nil
}

func readSeed(path string) ([]models.Video, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var videos []models.Video
	if err := json.NewDecoder(file).Decode(&videos); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	if videos == nil {
		videos = []models.Video{}
	}
	for i := range videos {
		if videos[i].Tags == nil {
			videos[i].Tags = []string{}
		}
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
	return videos, nil
}

// List returns a snapshot of the collection in stored order. Callers may
// modify the result freely.
func (s *VideoStore) List() []models.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Video, len(s.videos))
	for i, v := range s.videos {
		out[i] = cloneVideo(v)
	}
	return out
}

// Count returns the number of stored videos.
func (s *VideoStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.videos)
}

// Create stores a new video at the head of the collection, regardless of
// how its timestamp compares to existing entries. The input must already be
// validated.
func (s *VideoStore) Create(in models.NewVideo) models.Video {
	tags := make([]string, len(in.Tags))
	copy(tags, in.Tags)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	video := models.Video{
		ID:           id,
		Title:        in.Title,
		CreatedAt:    s.now().UTC(),
		Tags:         tags,
		ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s/400/225", id),
		Duration:     s.rng.IntN(1800) + 300,
		Views:        s.rng.IntN(1000),
	}

	s.videos = append([]models.Video{video}, s.videos...)
	return cloneVideo(video)
}

// Stats summarizes the current collection.
func (s *VideoStore) Stats(now time.Time) models.LibraryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.LibraryStats{Date: now, Total: len(s.videos)}
	tags := make(map[string]struct{})
	for i, v := range s.videos {
		stats.TotalViews += v.Views
		for _, t := range v.Tags {
			tags[t] = struct{}{}
		}
		if stats.Newest == nil || v.CreatedAt.After(stats.Newest.CreatedAt) {
			newest := cloneVideo(s.videos[i])
			stats.Newest = &newest
		}
	}
	stats.TagCount = len(tags)
	return stats
}

func cloneVideo(v models.Video) models.Video {
	tags := make([]string, len(v.Tags))
	copy(tags, v.Tags)
	v.Tags = tags
	return v
}
