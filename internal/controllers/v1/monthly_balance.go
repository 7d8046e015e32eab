package v1

import (
	"net/http"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/balance"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/httputil"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterMonthlyBalanceRoutes registers the routes for monthly balances
// with the RouterGroup that is passed.
func RegisterMonthlyBalanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonthlyBalances)
	r.GET("", GetMonthlyBalances)

	r.OPTIONS("/refresh", OptionsMonthlyBalanceRefresh)
	r.POST("/refresh", RefreshMonthlyBalances)
}

// MonthlyBalance is the representation of a cached monthly balance in API v1.
type MonthlyBalance struct {
	Month              types.Month     `json:"month" example:"2025-08-01T00:00:00Z"`      // The month the snapshot covers
	Income             decimal.Decimal `json:"income" example:"3858.61"`                  // Income of the month
	Expenses           decimal.Decimal `json:"expenses" example:"1515.22"`                // Expenses of the month
	Balance            decimal.Decimal `json:"balance" example:"2343.39"`                 // Income minus expenses
	AccumulatedBalance decimal.Decimal `json:"accumulatedBalance" example:"4686.78"`      // Running balance since the start of the year
	UpdatedAt          time.Time       `json:"updatedAt" example:"2025-08-14T07:01:00Z"`  // When the snapshot was last recomputed
}

func newMonthlyBalance(model models.MonthlyBalance) MonthlyBalance {
	return MonthlyBalance{
		Month:              model.Month,
		Income:             model.Income,
		Expenses:           model.Expenses,
		Balance:            model.Balance,
		AccumulatedBalance: model.AccumulatedBalance,
		UpdatedAt:          model.UpdatedAt,
	}
}

type MonthlyBalanceListResponse struct {
	Data  []MonthlyBalance `json:"data"`                                              // List of monthly balances
	Error *string          `json:"error" example:"the year parameter must be a four digit year"` // The error, if any occurred
}

type MonthlyBalanceQueryFilter struct {
	Year int `form:"year"` // The calendar year. Defaults to the current year.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyBalances
// @Success		204
// @Router			/v1/monthly-balances [options]
func OptionsMonthlyBalances(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyBalances
// @Success		204
// @Router			/v1/monthly-balances/refresh [options]
func OptionsMonthlyBalanceRefresh(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get monthly balances
// @Description	Returns the cached monthly balances of one calendar year. The cache is recomputed on refresh, it may lag behind the transactions.
// @Tags			MonthlyBalances
// @Produce		json
// @Success		200		{object}	MonthlyBalanceListResponse
// @Failure		400		{object}	MonthlyBalanceListResponse
// @Failure		500		{object}	MonthlyBalanceListResponse
// @Param			year	query		int	false	"The calendar year. Defaults to the current year."
// @Router			/v1/monthly-balances [get]
func GetMonthlyBalances(c *gin.Context) {
	year, ok := yearParameter(c)
	if !ok {
		e := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	balances, err := models.MonthlyBalances(models.LocalUser, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]MonthlyBalance, 0)
	for _, b := range balances {
		data = append(data, newMonthlyBalance(b))
	}

	c.JSON(http.StatusOK, MonthlyBalanceListResponse{Data: data})
}

// @Summary		Refresh monthly balances
// @Description	Recomputes the monthly balances of one calendar year from the current transactions
// @Tags			MonthlyBalances
// @Produce		json
// @Success		200		{object}	MonthlyBalanceListResponse
// @Failure		400		{object}	MonthlyBalanceListResponse
// @Failure		500		{object}	MonthlyBalanceListResponse
// @Param			year	query		int	false	"The calendar year. Defaults to the current year."
// @Router			/v1/monthly-balances/refresh [post]
func RefreshMonthlyBalances(c *gin.Context) {
	year, ok := yearParameter(c)
	if !ok {
		e := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	err := balance.RefreshYear(models.LocalUser, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	balances, err := models.MonthlyBalances(models.LocalUser, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBalanceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]MonthlyBalance, 0)
	for _, b := range balances {
		data = append(data, newMonthlyBalance(b))
	}

	c.JSON(http.StatusOK, MonthlyBalanceListResponse{Data: data})
}

// yearParameter reads the year query parameter, defaulting to the current year.
func yearParameter(c *gin.Context) (int, bool) {
	var filter MonthlyBalanceQueryFilter
	if err := c.Bind(&filter); err != nil {
		return 0, false
	}

	if filter.Year == 0 {
		return time.Now().UTC().Year(), true
	}

	if filter.Year < 1000 || filter.Year > 9999 {
		return 0, false
	}

	return filter.Year, true
}
