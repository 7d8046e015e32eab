package v1

import (
	"net/http"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/forecast"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/httputil"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterProjectionRoutes registers the routes for projections with
// the RouterGroup that is passed.
func RegisterProjectionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProjections)
	r.GET("", GetProjections)

	r.OPTIONS("/analyze", OptionsProjectionAnalyze)
	r.POST("/analyze", AnalyzeTransaction)
}

type ProjectionListResponse struct {
	Data  []forecast.MonthlyProjection `json:"data"`                                                   // List of monthly projections
	Error *string                      `json:"error" example:"the months parameter must be between 1 and 120"` // The error, if any occurred
}

type AnalysisResponse struct {
	Data  *forecast.Analysis `json:"data"`                                                                                      // The impact analysis
	Error *string            `json:"error" example:"the body of your request contains invalid or un-parseable data. Please check and try again"` // The error, if any occurred
}

type ProjectionQueryFilter struct {
	Months int `form:"months"` // Number of months to project. Defaults to 12.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projections
// @Success		204
// @Router			/v1/projections [options]
func OptionsProjections(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projections
// @Success		204
// @Router			/v1/projections/analyze [options]
func OptionsProjectionAnalyze(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get projections
// @Description	Projects the monthly balances for the coming months from the current transactions, starting at the current month
// @Tags			Projections
// @Produce		json
// @Success		200		{object}	ProjectionListResponse
// @Failure		400		{object}	ProjectionListResponse
// @Failure		500		{object}	ProjectionListResponse
// @Param			months	query		int	false	"Number of months to project. Defaults to 12, maximum is 120."
// @Router			/v1/projections [get]
func GetProjections(c *gin.Context) {
	var filter ProjectionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := errMonthsInvalid.Error()
		c.JSON(http.StatusBadRequest, ProjectionListResponse{
			Error: &e,
		})
		return
	}

	months := filter.Months
	if months == 0 {
		months = 12
	}

	if months < 1 || months > 120 {
		e := errMonthsInvalid.Error()
		c.JSON(http.StatusBadRequest, ProjectionListResponse{
			Error: &e,
		})
		return
	}

	transactions, err := models.Transactions(models.LocalUser)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectionListResponse{
			Error: &e,
		})
		return
	}

	projections := forecast.Generate(transactions, types.MonthOf(time.Now().UTC()), months)
	c.JSON(http.StatusOK, ProjectionListResponse{Data: projections})
}

// @Summary		Analyze transaction
// @Description	Simulates adding a transaction and reports its impact on the projected balances. Nothing is persisted.
// @Tags			Projections
// @Accept			json
// @Produce		json
// @Success		200			{object}	AnalysisResponse
// @Failure		400			{object}	AnalysisResponse
// @Failure		500			{object}	AnalysisResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction to simulate"
// @Router			/v1/projections/analyze [post]
func AnalyzeTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{
			Error: &e,
		})
		return
	}

	candidate := editable.model()
	if !candidate.Kind.Valid() {
		e := errTransactionKindInvalid.Error()
		c.JSON(http.StatusBadRequest, AnalysisResponse{
			Error: &e,
		})
		return
	}

	if candidate.Description == "" {
		e := errDescriptionRequired.Error()
		c.JSON(http.StatusBadRequest, AnalysisResponse{
			Error: &e,
		})
		return
	}

	if !candidate.Amount.IsPositive() {
		e := models.ErrAmountNotPositive.Error()
		c.JSON(http.StatusBadRequest, AnalysisResponse{
			Error: &e,
		})
		return
	}

	// A candidate without a start date starts now
	if candidate.StartDate.IsZero() {
		candidate.StartDate = time.Now().UTC()
	}

	transactions, err := models.Transactions(models.LocalUser)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{
			Error: &e,
		})
		return
	}

	analysis := forecast.Analyze(transactions, candidate, types.MonthOf(time.Now().UTC()))
	c.JSON(http.StatusOK, AnalysisResponse{Data: &analysis})
}
