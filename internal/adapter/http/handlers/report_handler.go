package handlers

import (
	"fmt"
	"net/http"
	"time"

	request "gestao_servicos/internal/adapter/http/dto/request"
	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/domain/timeline"
	"gestao_servicos/internal/infrastructure/logging"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the dashboard, the calendar grid and the XLSX export.
type ReportHandler struct {
	usecase usecase.IReportUseCase
	loc     *time.Location
	now     func() time.Time
}

func NewReportHandler(uc usecase.IReportUseCase, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReportHandler{usecase: uc, loc: loc, now: time.Now}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	q, appErr := h.dashboardQuery(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.Dashboard(c.Request.Context(), q)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// Calendar accepts month=YYYY-MM; the current month in the business zone is
// used when it is omitted.
func (h *ReportHandler) Calendar(c *gin.Context) {
	var q request.CalendarRequestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	year, month, err := q.YearMonth(h.now().In(h.loc))
	if err != nil {
		appErr := mapReportError(usecase.ErrInvalidMonth)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cal, err := h.usecase.Calendar(c.Request.Context(), usecase.CalendarQuery{
		OrganizationID: q.OrganizationID,
		Year:           year,
		Month:          month,
	})
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendar(cal))
}

func (h *ReportHandler) Export(c *gin.Context) {
	q, appErr := h.dashboardQuery(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := h.usecase.ExportServices(c.Request.Context(), q)
	if err != nil {
		logging.For("report", "handler").WithError(err).Error("export failed")
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("servicos-%s.xlsx", h.now().In(h.loc).Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ReportHandler) dashboardQuery(c *gin.Context) (usecase.DashboardQuery, *pkg.AppError) {
	var q request.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return usecase.DashboardQuery{}, errInvalidRequest
	}
	r, err := q.Range(h.loc)
	if err != nil {
		return usecase.DashboardQuery{}, errInvalidDate
	}
	g, err := timeline.ParseGranularity(q.Granularity)
	if err != nil {
		return usecase.DashboardQuery{}, pkg.NewDomainErrorSimple("INVALID_GRANULARITY", "granularity must be day or month", http.StatusBadRequest)
	}
	return usecase.DashboardQuery{OrganizationID: q.OrganizationID, Range: r, Granularity: g}, nil
}
