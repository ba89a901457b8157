package libraryclient

import (
	"context"
	"errors"
	"sync"

	"video-library/internal/models"
	"video-library/shared/logging"

	"github.com/rs/zerolog"
)

const (
	msgLoadFailed   = "We couldn't load the video library. Please try refreshing the page."
	msgCreateFailed = "An unknown error occurred while adding the video."
)

// VideoAPI is the subset of Client the Library needs.
type VideoAPI interface {
	ListVideos(ctx context.Context) ([]models.Video, error)
	CreateVideo(ctx context.Context, in models.NewVideo) (*models.Video, error)
}

// LibraryState is a point-in-time copy of the Library's state.
type LibraryState struct {
	Videos   []models.Video
	Loading  bool
	Error    string
	Creating bool
	// CreateError is kept apart from Error so a failed create never hides a
	// list-loading failure, or the other way round.
	CreateError string
}

// Library caches the server's video list for the views. The cache only
// changes on a completed load or a successful create.
type Library struct {
	api VideoAPI
	log zerolog.Logger

	loadOnce sync.Once

	mu    sync.Mutex
	state LibraryState
}

func NewLibrary(api VideoAPI) *Library {
	return &Library{
		api:   api,
		log:   logging.WithComponent("client"),
		state: LibraryState{Videos: []models.Video{}, Loading: true},
	}
}

// Mount loads the list the first time it is called; later calls are no-ops.
func (l *Library) Mount(ctx context.Context) {
	l.loadOnce.Do(func() { l.Load(ctx) })
}

// Load fetches the full list and replaces the cache.
func (l *Library) Load(ctx context.Context) {
	l.mu.Lock()
	l.state.Loading = true
	l.state.Error = ""
	l.mu.Unlock()

	videos, err := l.api.ListVideos(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Loading = false
	if err != nil {
		l.log.Error().Err(err).Msg("failed to load video data from server")
		l.state.Error = msgLoadFailed
		return
	}
	l.state.Videos = videos
}

// Create sends in to the server and, once the server has answered with the
// created record, prepends it to the cache. It reports whether the create
// succeeded. Concurrent calls are neither merged nor queued.
func (l *Library) Create(ctx context.Context, in models.NewVideo) bool {
	l.mu.Lock()
	l.state.Creating = true
	l.state.CreateError = ""
	l.mu.Unlock()

	video, err := l.api.CreateVideo(ctx, in)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Creating = false
	if err != nil {
		l.log.Error().Err(err).Msg("failed to add video")
		l.state.CreateError = createErrorMessage(err)
		return false
	}

	videos := make([]models.Video, 0, len(l.state.Videos)+1)
	videos = append(videos, *video)
	l.state.Videos = append(videos, l.state.Videos...)
	return true
}

func createErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return msgCreateFailed
}

// State returns a copy of the current state.
func (l *Library) State() LibraryState {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.state
	s.Videos = make([]models.Video, len(l.state.Videos))
	copy(s.Videos, l.state.Videos)
	return s
}
