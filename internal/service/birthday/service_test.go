package birthday

import (
	"context"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altikastudio/dashboard-api/internal/message"
	"github.com/altikastudio/dashboard-api/internal/model"
	"github.com/altikastudio/dashboard-api/internal/upstream"
	"github.com/altikastudio/dashboard-api/pkg/logger"
)

type stubSource struct {
	records []model.Birthday
	calls   int
}

func (s *stubSource) Birthdays(ctx context.Context, cred upstream.Credential) ([]model.Birthday, error) {
	s.calls++
	return s.records, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestService(source *stubSource, now time.Time) *Service {
	composer := message.NewComposer(message.NewSanitizer(), "Altika Studio Dental", "Juliana")
	cache := gocache.New(time.Minute, time.Minute)
	return NewService(source, cache, composer, fixedClock{now: now}, nil, logger.New(nil))
}

func TestViewHighlightsCurrentMonth(t *testing.T) {
	source := &stubSource{records: []model.Birthday{
		{RowID: 1, Patient: "Maria", Month: 3, Day: 14, PhoneStatus: model.PhoneValid},
		{RowID: 2, Patient: "Juan", Month: 7, Day: 2, PhoneStatus: model.PhoneValid},
	}}
	march := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	svc := newTestService(source, march)

	v, err := svc.View(context.Background(), upstream.Credential{}, "s1", model.BirthdayFilter{}, model.DefaultBirthdaySort(), false)
	require.NoError(t, err)

	assert.Equal(t, 2, v.Matched, "highlighting must not shrink the main list")
	require.Len(t, v.ThisMonth, 1)
	assert.Equal(t, 1, v.ThisMonth[0].RowID)
}

func TestViewServesFromSessionCache(t *testing.T) {
	source := &stubSource{records: []model.Birthday{{RowID: 1, Month: 1, Day: 1}}}
	svc := newTestService(source, time.Now())

	_, err := svc.View(context.Background(), upstream.Credential{}, "s1", model.BirthdayFilter{}, model.DefaultBirthdaySort(), false)
	require.NoError(t, err)
	_, err = svc.View(context.Background(), upstream.Credential{}, "s1", model.BirthdayFilter{}, model.DefaultBirthdaySort(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
}

func TestGreetingLinkUsesGenderGrammar(t *testing.T) {
	source := &stubSource{records: []model.Birthday{
		{RowID: 1, Patient: "Ana", Gender: "Femenino", Month: 3, Day: 2, Phone: "301 555 0000", PhoneStatus: model.PhoneValid},
	}}
	svc := newTestService(source, time.Now())

	link, err := svc.GreetingLink(context.Background(), upstream.Credential{}, "s1", 1)
	require.NoError(t, err)
	assert.Contains(t, link.Message, "Querida Ana")
	assert.Contains(t, link.Link, "phone=3015550000")
}

func TestOptionsDeriveFromCollection(t *testing.T) {
	source := &stubSource{records: []model.Birthday{
		{RowID: 1, Gender: "Femenino", Month: 3, Day: 21},
		{RowID: 2, Gender: "Masculino", Month: 7, Day: 3},
	}}
	svc := newTestService(source, time.Now())

	opts, err := svc.Options(context.Background(), upstream.Credential{}, "s1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 21}, opts.Days)
	assert.Equal(t, []string{"Femenino", "Masculino"}, opts.Genders)
}
