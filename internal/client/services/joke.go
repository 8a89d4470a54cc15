package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jokecli/internal/client/client"
	"github.com/dmitrijs2005/jokecli/internal/client/jokeapi"
	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/client/repositories/history"
	"github.com/dmitrijs2005/jokecli/internal/common"
	"github.com/dmitrijs2005/jokecli/internal/logging"
	"github.com/google/uuid"
)

// maxSeenAttempts bounds re-fetching when skipping already seen jokes.
const maxSeenAttempts = 3

type JokeService interface {
	// Document fetches a vocabulary endpoint. The response is returned even
	// for non-2xx statuses so the caller can report them.
	Document(ctx context.Context, url string) (*client.Response, error)

	// Next fetches and decodes one joke from target and records it in the
	// history when one is configured.
	Next(ctx context.Context, target string) (*models.Joke, error)
}

type jokeService struct {
	client   client.Client
	history  history.Repository
	skipSeen bool
	logger   logging.Logger

	now   func() time.Time
	newID func() string
}

// NewJokeService wires a JokeService. repo may be nil, in which case nothing
// is recorded and skipSeen has no effect.
func NewJokeService(c client.Client, repo history.Repository, skipSeen bool, logger logging.Logger) JokeService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &jokeService{
		client:   c,
		history:  repo,
		skipSeen: skipSeen,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *jokeService) Document(ctx context.Context, url string) (*client.Response, error) {
	return s.client.Fetch(ctx, url, common.ContentTypeJSON)
}

func (s *jokeService) Next(ctx context.Context, target string) (*models.Joke, error) {
	attempts := 1
	if s.skipSeen && s.history != nil {
		attempts = maxSeenAttempts
	}

	var joke *models.Joke
	for i := 0; i < attempts; i++ {
		var err error
		joke, err = s.fetch(ctx, target)
		if err != nil {
			return nil, err
		}
		if attempts == 1 || !s.seen(ctx, joke) {
			break
		}
		s.logger.Debug(ctx, "joke already seen, fetching another", "api_id", joke.APIID, "attempt", i+1)
	}

	s.record(ctx, joke)
	return joke, nil
}

func (s *jokeService) fetch(ctx context.Context, target string) (*models.Joke, error) {
	resp, err := s.client.Fetch(ctx, target, common.ContentTypeJSON)
	if err != nil {
		return nil, fmt.Errorf("fetch joke: %w", err)
	}
	if !common.IsSuccessStatus(resp.StatusCode) {
		return nil, fmt.Errorf("fetch joke: %w", &common.APIResponseError{StatusCode: resp.StatusCode, Reason: resp.Reason})
	}

	joke, err := jokeapi.DecodeJoke(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode joke: %w", err)
	}
	return joke, nil
}

// seen treats history errors as "not seen"; the history is best effort.
func (s *jokeService) seen(ctx context.Context, j *models.Joke) bool {
	seen, err := s.history.Seen(ctx, j.APIID)
	if err != nil {
		s.logger.Warn(ctx, "history lookup failed", "error", err)
		return false
	}
	return seen
}

func (s *jokeService) record(ctx context.Context, j *models.Joke) {
	if s.history == nil {
		return
	}
	rec := &models.HistoryRecord{
		ID:        s.newID(),
		APIID:     j.APIID,
		Category:  j.Category,
		Kind:      j.Kind,
		Text:      j.Body(),
		FetchedAt: s.now(),
	}
	if err := s.history.Add(ctx, rec); err != nil {
		s.logger.Warn(ctx, "failed to record joke", "error", err)
	}
}
