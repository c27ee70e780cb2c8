package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altikastudio/dashboard-api/internal/model"
	"github.com/altikastudio/dashboard-api/pkg/logger"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, logger.New(nil), nil)
}

func TestLoginExtractsTokenFromArrayResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`[{"token":"abc123"}]`))
	})

	cred, err := c.Login(context.Background(), "staff@altika.co", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", cred.Token)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := c.Login(context.Background(), "staff@altika.co", "secret")
	assert.Error(t, err)
}

func TestAppointmentsCoercesWireRows(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/citas", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{"fila_original_excel":12,"Paciente":"Maria Garcia","Fecha":"2025-03-10","Hora":"09:00","Odontologo":"Dra. Lopez","Actividad":"Limpieza","Celular":"+57 300 1234567","Celular_valido":"VERDADERO"},
			{"fila_original_excel":13,"Paciente":"Juan Perez","Fecha":"2025-03-11","Hora":"10:00","Odontologo":"Dr. Ruiz","Actividad":"Ortodoncia","Celular":"","Celular_valido":"FALSO"}
		]`))
	})

	records, err := c.Appointments(context.Background(), Credential{Token: "tok"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 12, records[0].RowID)
	assert.Equal(t, "Maria Garcia", records[0].Patient)
	assert.Equal(t, model.PhoneValid, records[0].PhoneStatus)
	assert.Equal(t, model.PhoneInvalid, records[1].PhoneStatus)
}

func TestAppointmentsSurfacesUpstreamFailure(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Appointments(context.Background(), Credential{Token: "expired"})
	assert.Error(t, err)
}

func TestBirthdaysCoercesWireRows(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cumpleaños", r.URL.Path)
		w.Write([]byte(`[
			{"fila_original_excel":5,"Paciente":"Ana Torres","Genero":"Femenino","Cumple":"14 de marzo","Mes":3,"Dia":14,"Celular":"301 555 0000","Celular_valido":"VERDADERO"},
			{"fila_original_excel":6,"Paciente":"Luis Gomez","Genero":"Masculino","Cumple":"2 de julio","Mes":7,"Dia":2,"Celular":"no tiene","Celular_valido":""}
		]`))
	})

	records, err := c.Birthdays(context.Background(), Credential{Token: "tok"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 3, records[0].Month)
	assert.Equal(t, 14, records[0].Day)
	assert.Equal(t, model.PhoneValid, records[0].PhoneStatus)
	assert.Equal(t, model.PhoneInvalid, records[1].PhoneStatus, "anything but VERDADERO is invalid")
}
