package v1

import (
	"fmt"
	"net/http"

	"github.com/GustaPeruci/PersonalFinanceTracker/internal/httputil"
	"github.com/GustaPeruci/PersonalFinanceTracker/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterDebtorRoutes registers the routes for debtors with
// the RouterGroup that is passed.
func RegisterDebtorRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebtors)
		r.GET("", GetDebtors)
		r.POST("", CreateDebtors)
	}

	// Debtor with ID
	{
		r.OPTIONS("/:id", OptionsDebtorDetail)
		r.GET("/:id", GetDebtor)
		r.PATCH("/:id", UpdateDebtor)
		r.DELETE("/:id", DeleteDebtor)
	}

	// Payments for a debtor
	{
		r.OPTIONS("/:id/payments", OptionsDebtorPayments)
		r.GET("/:id/payments", GetDebtorPayments)
		r.POST("/:id/payments", CreateDebtorPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debtors
// @Success		204
// @Router			/v1/debtors [options]
func OptionsDebtors(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debtors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debtors/{id} [options]
func OptionsDebtorDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Debtor{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debtors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debtors/{id}/payments [options]
func OptionsDebtorPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var debtor models.Debtor
	err = models.DB.First(&debtor, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Get debtor
// @Description	Returns a specific debtor
// @Tags			Debtors
// @Produce		json
// @Success		200	{object}	DebtorResponse
// @Failure		400	{object}	DebtorResponse
// @Failure		404	{object}	DebtorResponse
// @Failure		500	{object}	DebtorResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debtors/{id} [get]
func GetDebtor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorResponse{
			Error: &e,
		})
		return
	}

	var debtor models.Debtor
	err = models.DB.First(&debtor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorResponse{
			Error: &e,
		})
		return
	}

	data := newDebtor(c, debtor)
	c.JSON(http.StatusOK, DebtorResponse{Data: &data})
}

// @Summary		Get debtors
// @Description	Returns a list of debtors
// @Tags			Debtors
// @Produce		json
// @Success		200	{object}	DebtorListResponse
// @Failure		400	{object}	DebtorListResponse
// @Failure		500	{object}	DebtorListResponse
// @Router			/v1/debtors [get]
// @Param			name	query	string	false	"Filter by name, fuzzy"
// @Param			status	query	string	false	"Filter by status tag"
// @Param			offset	query	uint	false	"The offset of the first Debtor returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Debtors to return. Defaults to 50."
func GetDebtors(c *gin.Context) {
	var filter DebtorQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DebtorListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	q := models.DB.
		Where("debtors.user_id = ?", models.LocalUser).
		Order("datetime(debtors.created_at) DESC").
		Where(&model, queryFields...)

	if filter.Name != "" {
		q = q.Where("debtors.name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("debtors.name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 debtors and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var debtors []models.Debtor
	err := q.Find(&debtors).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Debtor, 0)
	for _, debtor := range debtors {
		data = append(data, newDebtor(c, debtor))
	}

	c.JSON(http.StatusOK, DebtorListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create debtors
// @Description	Creates debtors from the list of submitted debtor data. The response code is the highest response code number that a single debtor creation would have caused. If it is not equal to 201, at least one debtor has an error.
// @Tags			Debtors
// @Produce		json
// @Success		201		{object}	DebtorCreateResponse
// @Failure		400		{object}	DebtorCreateResponse
// @Failure		500		{object}	DebtorCreateResponse
// @Param			debtors	body		[]DebtorEditable	true	"Debtors"
// @Router			/v1/debtors [post]
func CreateDebtors(c *gin.Context) {
	var editables []DebtorEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DebtorCreateResponse{}

	for _, editable := range editables {
		debtor := editable.model()
		err := models.DB.Create(&debtor).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDebtor(c, debtor)
		r.Data = append(r.Data, DebtorResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update debtor
// @Description	Updates an existing debtor. Only values to be updated need to be specified. The paid amount cannot be changed directly, record a payment instead.
// @Tags			Debtors
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtorResponse
// @Failure		400		{object}	DebtorResponse
// @Failure		404		{object}	DebtorResponse
// @Failure		500		{object}	DebtorResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debtor	body		DebtorEditable	true	"Debtor"
// @Router			/v1/debtors/{id} [patch]
func UpdateDebtor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorResponse{
			Error: &e,
		})
		return
	}

	// Get the debtor resource
	var debtor models.Debtor
	err = models.DB.First(&debtor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, DebtorEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update DebtorEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorResponse{
			Error: &e,
		})
		return
	}

	// If the total amount set via the API request is not existent or
	// is 0, we use the old amount
	if update.TotalAmount.IsZero() {
		update.TotalAmount = debtor.TotalAmount
	}

	err = models.DB.Model(&debtor).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorResponse{
			Error: &e,
		})
		return
	}

	data := newDebtor(c, debtor)
	c.JSON(http.StatusOK, DebtorResponse{Data: &data})
}

// @Summary		Delete debtor
// @Description	Deletes a debtor and all payments recorded for it
// @Tags			Debtors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debtors/{id} [delete]
func DeleteDebtor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var debtor models.Debtor
	err = models.DB.First(&debtor, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Payments reference the debtor, remove them first
	err = models.DB.Where(&models.DebtorPayment{DebtorID: debtor.ID}).Delete(&models.DebtorPayment{}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&debtor).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get payments
// @Description	Returns the payments recorded for a debtor, newest first
// @Tags			Debtors
// @Produce		json
// @Success		200	{object}	DebtorPaymentListResponse
// @Failure		400	{object}	DebtorPaymentListResponse
// @Failure		404	{object}	DebtorPaymentListResponse
// @Failure		500	{object}	DebtorPaymentListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debtors/{id}/payments [get]
func GetDebtorPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorPaymentListResponse{
			Error: &e,
		})
		return
	}

	var debtor models.Debtor
	err = models.DB.First(&debtor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorPaymentListResponse{
			Error: &e,
		})
		return
	}

	payments, err := models.DebtorPayments(debtor.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorPaymentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]DebtorPayment, 0)
	for _, payment := range payments {
		data = append(data, newDebtorPayment(c, payment))
	}

	c.JSON(http.StatusOK, DebtorPaymentListResponse{Data: data})
}

// @Summary		Record payment
// @Description	Records a payment for a debtor and updates the debtor's paid amount
// @Tags			Debtors
// @Accept			json
// @Produce		json
// @Success		201		{object}	DebtorPaymentResponse
// @Failure		400		{object}	DebtorPaymentResponse
// @Failure		404		{object}	DebtorPaymentResponse
// @Failure		500		{object}	DebtorPaymentResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		DebtorPaymentEditable	true	"Payment"
// @Router			/v1/debtors/{id}/payments [post]
func CreateDebtorPayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorPaymentResponse{
			Error: &e,
		})
		return
	}

	var debtor models.Debtor
	err = models.DB.First(&debtor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorPaymentResponse{
			Error: &e,
		})
		return
	}

	var editable DebtorPaymentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorPaymentResponse{
			Error: &e,
		})
		return
	}

	payment := editable.model(debtor)
	err = models.DB.Create(&payment).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorPaymentResponse{
			Error: &e,
		})
		return
	}

	// Reload the debtor to return the recomputed paid amount
	err = models.DB.First(&debtor, debtor.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtorPaymentResponse{
			Error: &e,
		})
		return
	}

	data := newDebtorPayment(c, payment)
	debtorData := newDebtor(c, debtor)
	c.JSON(http.StatusCreated, DebtorPaymentResponse{
		Data:   &data,
		Debtor: &debtorData,
	})
}
