package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/split-star/backend/internal/httputil"
	"github.com/split-star/backend/internal/models"
	"github.com/split-star/backend/internal/split"
	"golang.org/x/exp/slices"
)

// defaultLimit is the number of splits returned when no limit is requested.
const defaultLimit = 50

// RegisterSplitRoutes registers the routes for splits with
// the RouterGroup that is passed.
func RegisterSplitRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSplits)
		r.GET("", GetSplits)
		r.POST("", CreateSplits)
	}

	// Split with ID
	{
		r.OPTIONS("/:id", OptionsSplitDetail)
		r.GET("/:id", GetSplit)
		r.PATCH("/:id", UpdateSplit)
		r.DELETE("/:id", CancelSplit)
	}

	// Transitions and payments
	{
		r.OPTIONS("/:id/activate", OptionsSplitActivate)
		r.POST("/:id/activate", ActivateSplit)
		r.OPTIONS("/:id/payments", OptionsSplitPayments)
		r.POST("/:id/payments", CreatePayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Splits
// @Success		204
// @Router			/v1/splits [options]
func OptionsSplits(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Splits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/splits/{id} [options]
func OptionsSplitDetail(c *gin.Context) {
	if !splitExists(c) {
		return
	}
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Splits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/splits/{id}/activate [options]
func OptionsSplitActivate(c *gin.Context) {
	if !splitExists(c) {
		return
	}
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Splits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/splits/{id}/payments [options]
func OptionsSplitPayments(c *gin.Context) {
	if !splitExists(c) {
		return
	}
	httputil.OptionsPost(c)
}

// splitExists writes an error response and returns false if the
// split in the URI does not exist.
func splitExists(c *gin.Context) bool {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return false
	}

	_, err = models.LoadSplit(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return false
	}

	return true
}

// @Summary		Get split
// @Description	Returns a specific split with all allocations and the activity log
// @Tags			Splits
// @Produce		json
// @Success		200	{object}	SplitResponse
// @Failure		400	{object}	SplitResponse
// @Failure		404	{object}	SplitResponse
// @Failure		500	{object}	SplitResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/splits/{id} [get]
func GetSplit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SplitResponse{
			Error: &e,
		})
		return
	}

	s, err := models.LoadSplit(models.DB, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SplitResponse{
			Error: &e,
		})
		return
	}

	data := newSplit(c, s)
	c.JSON(http.StatusOK, SplitResponse{Data: &data})
}

// @Summary		Get splits
// @Description	Returns a list of splits, newest first
// @Tags			Splits
// @Produce		json
// @Success		200	{object}	SplitListResponse
// @Failure		400	{object}	SplitListResponse
// @Failure		500	{object}	SplitListResponse
// @Router			/v1/splits [get]
// @Param			group		query	string			false	"Filter by group ID"
// @Param			member		query	string			false	"Filter by ID of a member that is part of the split"
// @Param			memberName	query	string			false	"Filter by member name, supports * as wildcard"
// @Param			status		query	split.Status	false	"Filter by status"
// @Param			method		query	split.Method	false	"Filter by split method"
// @Param			offset		query	uint			false	"The offset of the first Split returned. Defaults to 0."
// @Param			limit		query	int				false	"Maximum number of Splits to return. Defaults to 50. Negative values return all splits."
func GetSplits(c *gin.Context) {
	var filter SplitQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SplitListResponse{
			Error: &s,
		})
		return
	}

	if filter.Status != "" && !slices.Contains(split.Statuses, filter.Status) {
		s := errSplitStatusFilter.Error()
		c.JSON(http.StatusBadRequest, SplitListResponse{
			Error: &s,
		})
		return
	}

	if filter.Method != "" && !filter.Method.Valid() {
		s := errSplitMethodInvalid.Error()
		c.JSON(http.StatusBadRequest, SplitListResponse{
			Error: &s,
		})
		return
	}

	limit := defaultLimit
	if slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Limit") {
		limit = filter.Limit
	}

	splits, total, err := models.ListSplits(models.DB, filter.filter(limit))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SplitListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Split, 0, len(splits))
	for _, s := range splits {
		data = append(data, newSplit(c, s))
	}

	c.JSON(http.StatusOK, SplitListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create splits
// @Description	Creates splits from the list of submitted split data and computes their allocations. The response code is the highest response code number that a single split creation would have caused. If it is not equal to 201, at least one split has an error.
// @Tags			Splits
// @Produce		json
// @Success		201		{object}	SplitCreateResponse
// @Failure		400		{object}	SplitCreateResponse
// @Failure		500		{object}	SplitCreateResponse
// @Param			X-Actor	header		string			true	"ID of the member performing the change"
// @Param			splits	body		[]SplitEditable	true	"Splits"
// @Router			/v1/splits [post]
func CreateSplits(c *gin.Context) {
	actor, err := httputil.Actor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SplitCreateResponse{
			Error: &e,
		})
		return
	}

	var editables []SplitEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SplitCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SplitCreateResponse{}

	for _, editable := range editables {
		draft, err := editable.draft()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		s, err := split.New(draft, actor, time.Now())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		s, err = models.CreateSplit(models.DB, s)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		splitsCreated.WithLabelValues(string(s.Method)).Inc()
		log.Info().
			Str("request-id", requestid.Get(c)).
			Str("split", s.ID.String()).
			Str("actor", actor).
			Str("status", string(s.Status)).
			Str("total", s.TotalAmount.StringFixed(2)).
			Msg("split created")

		data := newSplit(c, s)
		r.Data = append(r.Data, SplitResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update split
// @Description	Updates an existing split and recomputes all allocations. Only values to be updated need to be specified.
// @Tags			Splits
// @Accept			json
// @Produce		json
// @Success		200		{object}	SplitResponse
// @Failure		400		{object}	SplitResponse
// @Failure		404		{object}	SplitResponse
// @Failure		409		{object}	SplitResponse
// @Failure		500		{object}	SplitResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			X-Actor	header		string		true	"ID of the member performing the change"
// @Param			split	body		SplitUpdate	true	"Split"
// @Router			/v1/splits/{id} [patch]
func UpdateSplit(c *gin.Context) {
	var update SplitUpdate
	mutateSplit(c, func(s split.Split, actor string) (split.Split, error) {
		revision, err := update.revision(s.Method)
		if err != nil {
			return split.Split{}, err
		}

		return split.Revise(s, revision, actor, time.Now())
	}, &update)
}

// @Summary		Cancel split
// @Description	Cancels a draft or active split. The split and its payments are kept, but it cannot be changed anymore.
// @Tags			Splits
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			X-Actor	header		string	true	"ID of the member performing the change"
// @Router			/v1/splits/{id} [delete]
func CancelSplit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	actor, err := httputil.Actor(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var before split.Split
	s, err := models.MutateSplit(models.DB, uri.ID.UUID, func(s split.Split) (split.Split, error) {
		before = s
		return split.Cancel(s, actor, time.Now())
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	observeTransition(before, s)
	log.Info().
		Str("request-id", requestid.Get(c)).
		Str("split", s.ID.String()).
		Str("actor", actor).
		Str("outstanding", s.Outstanding().StringFixed(2)).
		Msg("split cancelled")

	c.Status(http.StatusNoContent)
}

// @Summary		Activate split
// @Description	Activates a draft split. If every participating member has already paid, the split is completed right away.
// @Tags			Splits
// @Produce		json
// @Success		200		{object}	SplitResponse
// @Failure		400		{object}	SplitResponse
// @Failure		404		{object}	SplitResponse
// @Failure		409		{object}	SplitResponse
// @Failure		500		{object}	SplitResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			X-Actor	header		string	true	"ID of the member performing the change"
// @Router			/v1/splits/{id}/activate [post]
func ActivateSplit(c *gin.Context) {
	mutateSplit(c, func(s split.Split, actor string) (split.Split, error) {
		return split.Activate(s, actor, time.Now())
	}, nil)
}

// mutateSplit runs fn on the split from the URI and writes the response.
//
// If body is not nil, the request body is bound to it before fn is called.
func mutateSplit(c *gin.Context, fn func(split.Split, string) (split.Split, error), body any) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SplitResponse{
			Error: &e,
		})
		return
	}

	actor, err := httputil.Actor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SplitResponse{
			Error: &e,
		})
		return
	}

	if body != nil {
		err = httputil.BindData(c, body)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SplitResponse{
				Error: &e,
			})
			return
		}
	}

	var before split.Split
	s, err := models.MutateSplit(models.DB, uri.ID.UUID, func(s split.Split) (split.Split, error) {
		before = s
		return fn(s, actor)
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SplitResponse{
			Error: &e,
		})
		return
	}

	observeTransition(before, s)
	log.Info().
		Str("request-id", requestid.Get(c)).
		Str("split", s.ID.String()).
		Str("actor", actor).
		Str("status", string(s.Status)).
		Msg(s.Activity[len(s.Activity)-1].Description)

	data := newSplit(c, s)
	c.JSON(http.StatusOK, SplitResponse{Data: &data})
}
