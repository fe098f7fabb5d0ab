package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
}

// AbortWithError writes the error response and attaches the underlying
// error to the gin context so the logging and error middleware see it.
// A nil err still produces a context entry carrying msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
