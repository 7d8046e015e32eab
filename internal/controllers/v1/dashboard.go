package v1

import (
	"net/http"
	"time"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/forecast"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/httputil"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// Dashboard summarizes the current financial situation.
type Dashboard struct {
	Month              types.Month     `json:"month" example:"2025-08-01T00:00:00Z"` // The current month
	Income             decimal.Decimal `json:"income" example:"3858.61"`             // Income of the current month
	Expenses           decimal.Decimal `json:"expenses" example:"1515.22"`           // Expenses of the current month
	Balance            decimal.Decimal `json:"balance" example:"2343.39"`            // Income minus expenses
	AmountToReceive    decimal.Decimal `json:"amountToReceive" example:"153.01"`     // Sum of all outstanding debtor amounts
	FixedExpenses      []Transaction   `json:"fixedExpenses"`                        // Fixed expenses applying to the current month
	ActiveInstallments []Transaction   `json:"activeInstallments"`                   // Installment purchases applying to the current month
	RecentDebtors      []Debtor        `json:"recentDebtors"`                        // The five most recently created debtors
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                          // The dashboard data
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns a summary of the current month: income, expenses, balance, outstanding debts and the active recurring transactions
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	transactions, err := models.Transactions(models.LocalUser)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	debtors, err := models.Debtors(models.LocalUser)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	month := types.MonthOf(time.Now().UTC())
	projection := forecast.AggregateMonth(transactions, month)

	fixedExpenses := make([]Transaction, 0)
	for _, t := range projection.Transactions.FixedExpenses {
		fixedExpenses = append(fixedExpenses, newTransaction(c, t))
	}

	installments := make([]Transaction, 0)
	for _, t := range projection.Transactions.Installments {
		installments = append(installments, newTransaction(c, t))
	}

	amountToReceive := decimal.Zero
	for _, d := range debtors {
		if outstanding := d.Outstanding(); outstanding.IsPositive() {
			amountToReceive = amountToReceive.Add(outstanding)
		}
	}

	// Debtors are sorted newest first
	recent := make([]Debtor, 0)
	for i, d := range debtors {
		if i == 5 {
			break
		}
		recent = append(recent, newDebtor(c, d))
	}

	data := Dashboard{
		Month:              month,
		Income:             projection.Income,
		Expenses:           projection.TotalExpenses,
		Balance:            projection.NetBalance,
		AmountToReceive:    amountToReceive,
		FixedExpenses:      fixedExpenses,
		ActiveInstallments: installments,
		RecentDebtors:      recent,
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
