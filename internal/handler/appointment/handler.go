package appointment

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/altikastudio/dashboard-api/internal/middleware"
	"github.com/altikastudio/dashboard-api/internal/model"
	"github.com/altikastudio/dashboard-api/internal/service/schedule"
	apperrors "github.com/altikastudio/dashboard-api/pkg/errors"
	"github.com/altikastudio/dashboard-api/pkg/httputil"
)

type Handler struct {
	service *schedule.Service
}

func NewHandler(service *schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	appointments := g.Group("/appointments")
	appointments.GET("", h.List)
	appointments.GET("/options", h.Options)
	appointments.POST("/:id/reminder", h.Reminder)
}

type listQuery struct {
	Search   string `form:"search"`
	Date     string `form:"date"`
	Doctor   string `form:"doctor"`
	Activity string `form:"activity"`
	Phone    string `form:"phone" binding:"omitempty,phonestatus"`
	Sort     string `form:"sort" binding:"omitempty,oneof=date patient doctor activity"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
	View     string `form:"view" binding:"omitempty,oneof=cards table agenda"`
	Refresh  bool   `form:"refresh"`
}

// List computes the appointments view for the current filters, sort and
// view mode.
func (h *Handler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid query parameters", err))
		return
	}

	filter := model.AppointmentFilter{
		Search:   q.Search,
		Date:     q.Date,
		Doctor:   q.Doctor,
		Activity: q.Activity,
		Phone:    model.PhoneStatus(q.Phone),
	}

	spec := model.DefaultAppointmentSort()
	if q.Sort != "" {
		spec.Field = model.SortField(q.Sort)
	}
	if q.Order != "" {
		spec.Direction = model.SortDirection(q.Order)
	}

	mode := model.ViewCards
	if q.View != "" {
		mode = model.ViewMode(q.View)
	}

	v, err := h.service.View(c.Request.Context(), middleware.CredentialFrom(c), middleware.SessionIDFrom(c), filter, spec, mode, q.Refresh)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, v)
}

// Options returns the legal filter selector values for the current
// collection.
func (h *Handler) Options(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context(), middleware.CredentialFrom(c), middleware.SessionIDFrom(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, opts)
}

// Reminder builds the WhatsApp reminder link for one appointment row.
func (h *Handler) Reminder(c *gin.Context) {
	rowID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid appointment id", err))
		return
	}

	link, err := h.service.ReminderLink(c.Request.Context(), middleware.CredentialFrom(c), middleware.SessionIDFrom(c), rowID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, link)
}
