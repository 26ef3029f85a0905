package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ActorHeader carries the ID of the member performing a change.
const ActorHeader = "X-Actor"

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// Actor returns the member performing the request, read from the X-Actor header.
//
// Requests are not authenticated, the header is only recorded in the activity log.
func Actor(c *gin.Context) (string, error) {
	actor := strings.TrimSpace(c.GetHeader(ActorHeader))
	if actor == "" {
		return "", ErrActorMissing
	}

	return actor, nil
}
