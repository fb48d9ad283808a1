package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// StatisticsHandler handles read-only aggregation requests.
type StatisticsHandler struct {
	statisticsService services.StatisticsServicer
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(statisticsService services.StatisticsServicer) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// GetBalanceTotals handles overview balance queries
// @Summary     Get balance totals
// @Description Get income and expense totals over an inclusive date range of at most 90 days
// @Tags        statistics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string true "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to   query string true "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.BalanceTotals "Balance totals"
// @Failure     400 {object} ErrorResponse "Invalid or out-of-policy date range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/balance [get]
func (h *StatisticsHandler) GetBalanceTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.statisticsService.BalanceTotals(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// GetCategoryTotals handles category breakdown queries
// @Summary     Get category totals
// @Description Get per-category sums grouped by type, category, and icon over a date range, ascending by sum
// @Tags        statistics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string true "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to   query string true "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {array} services.CategoryTotal "Category totals"
// @Failure     400 {object} ErrorResponse "Invalid or out-of-policy date range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/categories [get]
func (h *StatisticsHandler) GetCategoryTotals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.statisticsService.CategoryTotals(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// historyQuery binds the history query parameters. Month is 0-indexed.
type historyQuery struct {
	TimeFrame string `form:"timeFrame" binding:"required,time_frame"`
	Year      int    `form:"year" binding:"required,min=2000,max=3000"`
	Month     int    `form:"month" binding:"min=0,max=11"`
}

// GetHistory handles history series queries
// @Summary     Get history series
// @Description Get a dense, zero-filled series of rollup buckets: 12 monthly buckets for timeFrame=year, or one bucket per day for timeFrame=month
// @Tags        statistics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       timeFrame query string true  "Granularity (month or year)"
// @Param       year      query int    true  "Year"
// @Param       month     query int    false "Month, 0-indexed (required for timeFrame=month)"
// @Success     200 {array} services.HistoryPoint "History points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/history [get]
func (h *StatisticsHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query historyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	history, err := h.statisticsService.History(
		userID,
		services.TimeFrame(query.TimeFrame),
		services.Period{Year: query.Year, Month: query.Month},
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetHistoryYears handles the retrieval of years with recorded activity
// @Summary     Get history years
// @Description Get the ascending list of years with recorded activity; the current year if there is none
// @Tags        statistics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} int "Years"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/years [get]
func (h *StatisticsHandler) GetHistoryYears(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	years, err := h.statisticsService.DistinctYears(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, years)
}
