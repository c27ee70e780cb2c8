// Package upstream talks to the clinic's webhook API, the black box that
// exports the appointment and birthday sheets. It owns the wire format:
// rows arrive with Spanish column names and are coerced into the typed
// records here, never inside the view logic.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/altikastudio/dashboard-api/internal/model"
	"github.com/altikastudio/dashboard-api/pkg/logger"
	"github.com/altikastudio/dashboard-api/pkg/metrics"
)

// Credential is the bearer token the upstream expects. It is passed
// explicitly on every call; there is no process-wide token.
type Credential struct {
	Token string
}

// Client is the HTTP client for the webhook API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// New builds a client. timeout bounds every request; the service does not
// retry, a failed fetch simply surfaces to the caller.
func New(baseURL string, timeout time.Duration, log *logger.Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  log.With("component", "upstream"),
		metrics: m,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges staff credentials for an upstream bearer token. The
// endpoint answers with a single-element array.
func (c *Client) Login(ctx context.Context, email, password string) (Credential, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return Credential{}, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return Credential{}, fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	c.observe("login", start, err == nil)
	if err != nil {
		return Credential{}, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Credential{}, fmt.Errorf("login rejected with status %d", resp.StatusCode)
	}

	var payload []loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Credential{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	if len(payload) == 0 || payload[0].Token == "" {
		return Credential{}, fmt.Errorf("login response carried no token")
	}

	return Credential{Token: payload[0].Token}, nil
}

// appointmentRow is the wire shape of one row of the appointment sheet.
type appointmentRow struct {
	Row        int    `json:"fila_original_excel"`
	Patient    string `json:"Paciente"`
	Date       string `json:"Fecha"`
	Time       string `json:"Hora"`
	Doctor     string `json:"Odontologo"`
	Activity   string `json:"Actividad"`
	Phone      string `json:"Celular"`
	PhoneValid string `json:"Celular_valido"`
}

// birthdayRow is the wire shape of one row of the birthday sheet.
type birthdayRow struct {
	Row        int    `json:"fila_original_excel"`
	Patient    string `json:"Paciente"`
	Gender     string `json:"Genero"`
	BirthDate  string `json:"Cumple"`
	Month      int    `json:"Mes"`
	Day        int    `json:"Dia"`
	Phone      string `json:"Celular"`
	PhoneValid string `json:"Celular_valido"`
}

// Appointments fetches the full appointment sheet.
func (c *Client) Appointments(ctx context.Context, cred Credential) ([]model.Appointment, error) {
	var rows []appointmentRow
	if err := c.get(ctx, cred, "/citas", "appointments", &rows); err != nil {
		return nil, err
	}

	records := make([]model.Appointment, len(rows))
	for i, r := range rows {
		records[i] = model.Appointment{
			RowID:       r.Row,
			Patient:     r.Patient,
			Date:        r.Date,
			Time:        r.Time,
			Doctor:      r.Doctor,
			Activity:    r.Activity,
			Phone:       r.Phone,
			PhoneStatus: phoneStatus(r.PhoneValid),
		}
	}
	return records, nil
}

// Birthdays fetches the full birthday sheet.
func (c *Client) Birthdays(ctx context.Context, cred Credential) ([]model.Birthday, error) {
	var rows []birthdayRow
	if err := c.get(ctx, cred, "/cumpleaños", "birthdays", &rows); err != nil {
		return nil, err
	}

	records := make([]model.Birthday, len(rows))
	for i, r := range rows {
		records[i] = model.Birthday{
			RowID:       r.Row,
			Patient:     r.Patient,
			Gender:      r.Gender,
			BirthDate:   r.BirthDate,
			Month:       r.Month,
			Day:         r.Day,
			Phone:       r.Phone,
			PhoneStatus: phoneStatus(r.PhoneValid),
		}
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, cred Credential, path, resource string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", resource, err)
	}
	if cred.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	c.observe(resource, start, err == nil)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s request rejected with status %d", resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", resource, err)
	}

	c.logger.Debug("fetched upstream records", "resource", resource)
	return nil
}

func (c *Client) observe(resource string, start time.Time, ok bool) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	c.metrics.UpstreamRequests.WithLabelValues(resource, status).Inc()
	c.metrics.UpstreamLatency.WithLabelValues(resource).Observe(time.Since(start).Seconds())
}

// The sheet marks sendable numbers with the literal VERDADERO; anything
// else, including blanks, counts as invalid.
func phoneStatus(raw string) model.PhoneStatus {
	if raw == "VERDADERO" {
		return model.PhoneValid
	}
	return model.PhoneInvalid
}
