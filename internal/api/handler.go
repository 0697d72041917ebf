package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finpulse/internal/domain/dto"
	"github.com/guttosm/finpulse/internal/service"
)

// Handler provides the HTTP handlers for the financial data endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters against each endpoint's whitelist
//   - Delegate data access and aggregation to the service layer
//   - Shape results (or failures) into the uniform response envelope
type Handler struct {
	svc service.QueryService
}

// NewHandler constructs a Handler with its service dependency injected.
func NewHandler(svc service.QueryService) *Handler {
	return &Handler{svc: svc}
}

// GetFinancialData handles GET /api/financial_data requests.
//
// GetFinancialData godoc
// @Summary      List financial data records
// @Description  Returns daily price/volume records, optionally filtered by symbol and date range, windowed by page/limit
// @Tags         financial_data
// @Produce      json
// @Param        start_date  query     string  false  "Start date (YYYY-MM-DD or YYYY/MM/DD)"  example(2023-01-01)
// @Param        end_date    query     string  false  "End date (YYYY-MM-DD or YYYY/MM/DD)"    example(2023-01-31)
// @Param        symbol      query     string  false  "Stock symbol"                           example(AAPL)
// @Param        limit       query     int     false  "Page size (default 5)"                  example(5)
// @Param        page        query     int     false  "1-indexed page number (default 1)"      example(1)
// @Success      200  {object}  dto.ListResponse   "Success (info.error flags an empty result)"
// @Failure      400  {object}  dto.ErrorResponse  "Unsupported, missing, or malformed parameter"
// @Failure      500  {object}  dto.ErrorResponse  "Storage failure"
// @Router       /api/financial_data [get]
func (h *Handler) GetFinancialData(c *gin.Context) {
	filter, err := parseListingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	records, count, err := h.svc.ListFinancialData(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch financial data"))
		return
	}

	pagination := service.Paginate(count, filter.Page, filter.Limit)
	c.JSON(http.StatusOK, dto.NewListResponse(records, pagination))
}

// GetStatistics handles GET /api/statistics requests.
//
// GetStatistics godoc
// @Summary      Get average statistics for a symbol
// @Description  Returns average daily open price, close price, and volume for a symbol over a date window
// @Tags         statistics
// @Produce      json
// @Param        start_date  query     string  true  "Start date (YYYY-MM-DD or YYYY/MM/DD)"  example(2023-01-01)
// @Param        end_date    query     string  true  "End date (YYYY-MM-DD or YYYY/MM/DD)"    example(2023-01-31)
// @Param        symbol      query     string  true  "Stock symbol"                           example(AAPL)
// @Success      200  {object}  dto.StatisticsResponse  "Success (info.error flags an empty result)"
// @Failure      400  {object}  dto.ErrorResponse       "Unsupported, missing, or malformed parameter"
// @Failure      500  {object}  dto.ErrorResponse       "Storage failure"
// @Router       /api/statistics [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	startDate, endDate, symbol, err := parseStatisticsWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	summary, matched, err := h.svc.GetStatistics(c.Request.Context(), startDate, endDate, symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute statistics"))
		return
	}

	c.JSON(http.StatusOK, dto.NewStatisticsResponse(summary, matched))
}
