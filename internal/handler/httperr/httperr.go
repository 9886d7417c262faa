package httperr

import (
	"bookit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the failure half of the {success, data|error, message?} envelope.
type Response struct {
	Status  int      `json:"-"`
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details any      `json:"details,omitempty"`
	Data    any      `json:"data,omitempty"`
	Stack   []string `json:"stack,omitempty"`
}

func New(status int, errText, message string) Response {
	return Response{Status: status, Error: errText, Message: message}
}

func (r Response) WithDetails(details any) Response {
	r.Details = details
	return r
}

func (r Response) WithData(data any) Response {
	r.Data = data
	return r
}

// Abort keeps the cause on the gin context for the logging middleware and writes the envelope.
func Abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		err = errs.New(resp.Error)
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

func AbortWithError(c *gin.Context, status int, err error, errText, message string) {
	Abort(c, err, New(status, errText, message))
}
