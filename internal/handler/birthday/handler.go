package birthday

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/altikastudio/dashboard-api/internal/middleware"
	"github.com/altikastudio/dashboard-api/internal/model"
	"github.com/altikastudio/dashboard-api/internal/service/birthday"
	apperrors "github.com/altikastudio/dashboard-api/pkg/errors"
	"github.com/altikastudio/dashboard-api/pkg/httputil"
)

type Handler struct {
	service *birthday.Service
}

func NewHandler(service *birthday.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	birthdays := g.Group("/birthdays")
	birthdays.GET("", h.List)
	birthdays.GET("/options", h.Options)
	birthdays.POST("/:id/greeting", h.Greeting)
}

type listQuery struct {
	Search  string `form:"search"`
	Month   int    `form:"month" binding:"omitempty,min=1,max=12"`
	Day     int    `form:"day" binding:"omitempty,min=1,max=31"`
	Gender  string `form:"gender"`
	Phone   string `form:"phone" binding:"omitempty,phonestatus"`
	Sort    string `form:"sort" binding:"omitempty,oneof=calendar patient"`
	Order   string `form:"order" binding:"omitempty,oneof=asc desc"`
	Refresh bool   `form:"refresh"`
}

// List computes the birthdays view, including the current-month section.
func (h *Handler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid query parameters", err))
		return
	}

	filter := model.BirthdayFilter{
		Search: q.Search,
		Month:  q.Month,
		Day:    q.Day,
		Gender: q.Gender,
		Phone:  model.PhoneStatus(q.Phone),
	}

	spec := model.DefaultBirthdaySort()
	if q.Sort != "" {
		spec.Field = model.SortField(q.Sort)
	}
	if q.Order != "" {
		spec.Direction = model.SortDirection(q.Order)
	}

	v, err := h.service.View(c.Request.Context(), middleware.CredentialFrom(c), middleware.SessionIDFrom(c), filter, spec, q.Refresh)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, v)
}

// Options returns the selector values for the current collection.
func (h *Handler) Options(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context(), middleware.CredentialFrom(c), middleware.SessionIDFrom(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, opts)
}

// Greeting builds the WhatsApp greeting link for one birthday row.
func (h *Handler) Greeting(c *gin.Context) {
	rowID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid birthday id", err))
		return
	}

	link, err := h.service.GreetingLink(c.Request.Context(), middleware.CredentialFrom(c), middleware.SessionIDFrom(c), rowID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, link)
}
