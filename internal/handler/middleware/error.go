package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"bookit/internal/handler/httperr"
	"bookit/internal/infra"
	"bookit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

const stackLines = 10

// ErrorHandler renders errors that handlers pushed with c.Error without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) > 0 {
			resp := Classify(c.Errors.Last().Err)
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, "Internal server error", ""))
	}
}

// Classify maps store errors by PostgreSQL code; anything else is a 500 whose
// message and stack are only exposed in debug mode.
func Classify(err error) httperr.Response {
	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		switch pgErr.Code {
		case infra.PgUniqueViolation:
			return httperr.New(http.StatusConflict, "Duplicate entry", "This record already exists")
		case infra.PgForeignKeyViolation:
			return httperr.New(http.StatusBadRequest, "Invalid reference", "Referenced record does not exist")
		case infra.PgNotNullViolation:
			return httperr.New(http.StatusBadRequest, "Missing required field", "A required field is missing")
		case infra.PgInvalidTextRepr:
			return httperr.New(http.StatusBadRequest, "Invalid data format", "Data format is incorrect")
		case infra.PgCheckViolation:
			return httperr.New(http.StatusBadRequest, "Constraint violation", "The request violates a data constraint")
		case infra.PgLockNotAvailable:
			return httperr.New(http.StatusConflict, "Resource busy", "The slot is being booked by another request, please retry")
		}
		resp := internalError(err)
		resp.Error = "Database error"
		resp.Details = gin.H{"code": pgErr.Code}
		return resp
	}
	return internalError(err)
}

func internalError(err error) httperr.Response {
	resp := httperr.New(http.StatusInternalServerError, "Internal server error", "")
	if gin.Mode() == gin.DebugMode {
		resp.Message = err.Error()
		resp.Stack = errs.ExtractStackLines(err, stackLines)
	}
	return resp
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic", "error", fmt.Sprint(rec), "path", c.Request.URL.Path)

				resp := internalError(errs.Newf("panic: %v", rec))
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
