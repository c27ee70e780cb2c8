package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altikastudio/dashboard-api/internal/handler"
	"github.com/altikastudio/dashboard-api/internal/message"
	"github.com/altikastudio/dashboard-api/internal/middleware"
	"github.com/altikastudio/dashboard-api/internal/model"
	"github.com/altikastudio/dashboard-api/internal/service/schedule"
	"github.com/altikastudio/dashboard-api/internal/upstream"
	"github.com/altikastudio/dashboard-api/pkg/httputil"
	"github.com/altikastudio/dashboard-api/pkg/logger"
)

type stubSource struct {
	records []model.Appointment
}

func (s *stubSource) Appointments(ctx context.Context, cred upstream.Credential) ([]model.Appointment, error) {
	return s.records, nil
}

func newTestRouter(records []model.Appointment) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler.RegisterValidations()

	composer := message.NewComposer(message.NewSanitizer(), "Altika Studio Dental", "Juliana")
	cache := gocache.New(time.Minute, time.Minute)
	svc := schedule.NewService(&stubSource{records: records}, cache, composer, nil, logger.New(nil))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextCredential, upstream.Credential{Token: "tok"})
		c.Set(middleware.ContextSessionID, "s1")
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListReturnsView(t *testing.T) {
	r := newTestRouter([]model.Appointment{
		{RowID: 1, Patient: "Maria Garcia", Date: "2025-03-10", Time: "09:00", PhoneStatus: model.PhoneValid},
		{RowID: 2, Patient: "Juan Perez", Date: "2025-03-10", Time: "08:30", PhoneStatus: model.PhoneInvalid},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?search=garcia", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var view model.AppointmentView
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 1, view.Matched)
}

func TestListRejectsUnknownSortField(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?sort=phone", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRejectsBadPhoneFilter(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?phone=maybe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReminderForInvalidPhoneIsUnprocessable(t *testing.T) {
	r := newTestRouter([]model.Appointment{
		{RowID: 1, Patient: "Juan", Phone: "300", PhoneStatus: model.PhoneInvalid},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/1/reminder", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
}

func TestReminderUnknownRowIsNotFound(t *testing.T) {
	r := newTestRouter([]model.Appointment{{RowID: 1, PhoneStatus: model.PhoneValid}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/99/reminder", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReminderBuildsLink(t *testing.T) {
	r := newTestRouter([]model.Appointment{
		{RowID: 1, Patient: "Maria Garcia", Date: "2025-03-10", Time: "09:00", Activity: "Limpieza", Phone: "+57 300 1234567", PhoneStatus: model.PhoneValid},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/1/reminder", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var link model.MessageLink
	require.NoError(t, json.Unmarshal(data, &link))
	assert.Contains(t, link.Link, "api.whatsapp.com/send")
	assert.Contains(t, link.Link, "phone=573001234567")
}
