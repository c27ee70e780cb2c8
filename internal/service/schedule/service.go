// Package schedule owns the appointments side of the dashboard: the
// session-cached record collection, the computed views and the reminder
// links.
package schedule

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

const resource = "appointments"

// Source fetches the appointment sheet from the upstream.
type Source interface {
	Appointments(ctx context.Context, cred upstream.Credential) ([]model.Appointment, error)
}

type Service struct {
	source   Source
	cache    *gocache.Cache
	composer *message.Composer
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewService(source Source, cache *gocache.Cache, composer *message.Composer, m *metrics.Metrics, log *logger.Logger) *Service {
	return &Service{
		source:   source,
		cache:    cache,
		composer: composer,
		metrics:  m,
		logger:   log.With("component", "schedule"),
	}
}

func cacheKey(sessionID string) string {
	return resource + ":" + sessionID
}

// Records returns the session's appointment collection, fetching it on
// first use. refresh replaces the collection wholesale; there is no
// incremental patching.
func (s *Service) Records(ctx context.Context, cred upstream.Credential, sessionID string, refresh bool) ([]model.Appointment, error) {
	key := cacheKey(sessionID)
	if !refresh {
		if cached, ok := s.cache.Get(key); ok {
			if s.metrics != nil {
				s.metrics.CacheHits.WithLabelValues(resource).Inc()
			}
			return cached.([]model.Appointment), nil
		}
	}
	if s.metrics != nil {
		s.metrics.CacheMisses.WithLabelValues(resource).Inc()
	}

	records, err := s.source.Appointments(ctx, cred)
	if err != nil {
		return nil, apperrors.Upstream(fmt.Errorf("failed to fetch appointments: %w", err))
	}

	s.cache.SetDefault(key, records)
	s.logger.Info("appointment collection replaced", "count", len(records))
	return records, nil
}

// View computes the filtered, sorted and optionally grouped presentation.
func (s *Service) View(ctx context.Context, cred upstream.Credential, sessionID string, filter model.AppointmentFilter, spec model.SortSpec, mode model.ViewMode, refresh bool) (model.AppointmentView, error) {
	records, err := s.Records(ctx, cred, sessionID, refresh)
	if err != nil {
		return model.AppointmentView{}, err
	}
	return view.ComputeAppointmentView(records, filter, spec, mode), nil
}

// Options derives the legal filter selector values from the session's
// current collection.
func (s *Service) Options(ctx context.Context, cred upstream.Credential, sessionID string) (model.AppointmentOptions, error) {
	records, err := s.Records(ctx, cred, sessionID, false)
	if err != nil {
		return model.AppointmentOptions{}, err
	}
	return view.AppointmentOptions(records), nil
}

// ReminderLink builds the WhatsApp reminder for one appointment. Records
// with an invalid phone flag get the distinct rejection, not a link.
func (s *Service) ReminderLink(ctx context.Context, cred upstream.Credential, sessionID string, rowID int) (model.MessageLink, error) {
	records, err := s.Records(ctx, cred, sessionID, false)
	if err != nil {
		return model.MessageLink{}, err
	}

	for _, r := range records {
		if r.RowID != rowID {
			continue
		}
		link, err := s.composer.AppointmentLink(r)
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
	return model.MessageLink{}, apperrors.NotFound("appointment", nil)
}
