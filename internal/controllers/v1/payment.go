package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/split-star/backend/internal/httputil"
	"github.com/split-star/backend/internal/models"
	"github.com/split-star/backend/internal/split"
)

// @Summary		Record payment
// @Description	Records a payment of a member. The amount must be larger than zero and must not exceed the remaining balance of the member. When the last open balance of an active split is paid, the split is completed.
// @Tags			Splits
// @Accept			json
// @Produce		json
// @Success		200		{object}	PaymentResponse
// @Failure		400		{object}	PaymentResponse
// @Failure		404		{object}	PaymentResponse
// @Failure		409		{object}	PaymentResponse
// @Failure		500		{object}	PaymentResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			X-Actor	header		string			true	"ID of the member performing the change"
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/v1/splits/{id}/payments [post]
func CreatePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	actor, err := httputil.Actor(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	var payment PaymentEditable
	err = httputil.BindData(c, &payment)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	var before split.Split
	s, err := models.MutateSplit(models.DB, uri.ID.UUID, func(s split.Split) (split.Split, error) {
		before = s
		return split.ApplyPayment(s, payment.MemberID, payment.Amount, actor, time.Now())
	})
	if err != nil {
		e := err.Error()
		r := PaymentResponse{Error: &e}

		var amountErr *split.PaymentAmountError
		if errors.As(err, &amountErr) {
			r.Range = &PaymentRange{
				Min: amountErr.Min,
				Max: amountErr.Max,
			}
		}

		c.JSON(status(err), r)
		return
	}

	a, _ := s.Allocation(payment.MemberID)
	paymentsTotal.WithLabelValues(string(a.PaymentStatus)).Inc()
	observeTransition(before, s)

	log.Info().
		Str("request-id", requestid.Get(c)).
		Str("split", s.ID.String()).
		Str("actor", actor).
		Str("member", payment.MemberID).
		Str("amount", payment.Amount.StringFixed(2)).
		Str("remaining", a.Remaining().StringFixed(2)).
		Msg("payment recorded")

	if s.Status == split.StatusCompleted && before.Status != split.StatusCompleted {
		log.Info().Str("request-id", requestid.Get(c)).Str("split", s.ID.String()).Msg("split completed")
	}

	data := newSplit(c, s)
	c.JSON(http.StatusOK, PaymentResponse{Data: &data})
}
