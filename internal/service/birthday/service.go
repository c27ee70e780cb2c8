// Package birthday owns the birthdays side of the dashboard: the session
// cache, the computed views with the current-month highlight, and the
// greeting links.
package birthday

import (
	"context"
	"errors"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/altikastudio/dashboard-api/internal/message"
	"github.com/altikastudio/dashboard-api/internal/model"
	"github.com/altikastudio/dashboard-api/internal/upstream"
	"github.com/altikastudio/dashboard-api/internal/view"
	apperrors "github.com/altikastudio/dashboard-api/pkg/errors"
	"github.com/altikastudio/dashboard-api/pkg/logger"
	"github.com/altikastudio/dashboard-api/pkg/metrics"
)

const resource = "birthdays"

// Source fetches the birthday sheet from the upstream.
type Source interface {
	Birthdays(ctx context.Context, cred upstream.Credential) ([]model.Birthday, error)
}

type Service struct {
	source   Source
	cache    *gocache.Cache
	composer *message.Composer
	clock    view.Clock
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewService(source Source, cache *gocache.Cache, composer *message.Composer, clock view.Clock, m *metrics.Metrics, log *logger.Logger) *Service {
	if clock == nil {
		clock = view.RealClock{}
	}
	return &Service{
		source:   source,
		cache:    cache,
		composer: composer,
		clock:    clock,
		metrics:  m,
		logger:   log.With("component", "birthday"),
	}
}

func cacheKey(sessionID string) string {
	return resource + ":" + sessionID
}

// Records returns the session's birthday collection, fetching it on first
// use. refresh replaces the collection wholesale.
func (s *Service) Records(ctx context.Context, cred upstream.Credential, sessionID string, refresh bool) ([]model.Birthday, error) {
	key := cacheKey(sessionID)
	if !refresh {
		if cached, ok := s.cache.Get(key); ok {
			if s.metrics != nil {
				s.metrics.CacheHits.WithLabelValues(resource).Inc()
			}
			return cached.([]model.Birthday), nil
		}
	}
	if s.metrics != nil {
		s.metrics.CacheMisses.WithLabelValues(resource).Inc()
	}

	records, err := s.source.Birthdays(ctx, cred)
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to fetch birthdays: %w", err))
	}

	s.cache.SetDefault(key, records)
	s.logger.Info("birthday collection replaced", "count", len(records))
	return records, nil
}

// View computes the filtered and sorted presentation, with the
// current-month section tagged against the injected clock.
func (s *Service) View(ctx context.Context, cred upstream.Credential, sessionID string, filter model.BirthdayFilter, spec model.SortSpec, refresh bool) (model.BirthdayView, error) {
	records, err := s.Records(ctx, cred, sessionID, refresh)
	if err != nil {
		return model.BirthdayView{}, err
	}
	return view.ComputeBirthdayView(records, filter, spec, s.clock.Now()), nil
}

// Options derives the selector values from the session's collection.
func (s *Service) Options(ctx context.Context, cred upstream.Credential, sessionID string) (model.BirthdayOptions, error) {
	records, err := s.Records(ctx, cred, sessionID, false)
	if err != nil {
		return model.BirthdayOptions{}, err
	}
	return view.BirthdayOptions(records), nil
}

// GreetingLink builds the WhatsApp greeting for one birthday row. Records
// with an invalid phone flag get the distinct rejection, not a link.
func (s *Service) GreetingLink(ctx context.Context, cred upstream.Credential, sessionID string, rowID int) (model.MessageLink, error) {
	records, err := s.Records(ctx, cred, sessionID, false)
	if err != nil {
		return model.MessageLink{}, err
	}

	for _, r := range records {
		if r.RowID != rowID {
			continue
		}
		link, err := s.composer.BirthdayLink(r)
		if err != nil {
			if errors.Is(err, message.ErrPhoneNotSendable) {
				if s.metrics != nil {
					s.metrics.LinksRejected.WithLabelValues(resource).Inc()
				}
				return model.MessageLink{}, apperrors.PhoneNotSendable(err)
			}
			return model.MessageLink{}, apperrors.Internal(err)
		}
		if s.metrics != nil {
			s.metrics.LinksBuilt.WithLabelValues(resource).Inc()
		}
		return link, nil
	}
	return model.MessageLink{}, apperrors.NotFound("birthday", nil)
}
