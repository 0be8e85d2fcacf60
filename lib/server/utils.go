package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pescuma/bdcrime/lib/charts"
	"github.com/pescuma/bdcrime/lib/model"
	"github.com/pescuma/bdcrime/lib/renderers/png"
)

var errorNotFound error
var errorBadRequest error

func init() {
	errorNotFound = fmt.Errorf("not found")
	errorBadRequest = fmt.Errorf("bad request")
}

func statusOf(err error) int {
	var unknownCrimeType *model.UnknownCrimeTypeError
	var filter *model.FilterError
	var aggregation *model.AggregationError

	switch {
	case errors.Is(err, errorNotFound), errors.Is(err, charts.ErrUnknownKind), errors.Is(err, png.ErrUnsupported):
		return http.StatusNotFound
	case errors.Is(err, errorBadRequest), errors.As(err, &unknownCrimeType), errors.As(err, &filter):
		return http.StatusBadRequest
	case errors.As(err, &aggregation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func sendError(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func get(f func() (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		result, err := f()
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func getP[P any](f func(*P) (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindUri(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = c.ShouldBindQuery(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := f(&params)
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func postP[P any](f func(*P) (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindJSON(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := f(&params)
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// getFile is like getP, but the handler writes a file instead of returning JSON.
func getFile[P any](contentType string, f func(*P, io.Writer) (string, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindUri(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = c.ShouldBindQuery(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var buf bytes.Buffer
		name, err := f(&params, &buf)
		if err != nil {
			sendError(c, err)
			return
		}

		if name != "" {
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		}
		c.Data(http.StatusOK, contentType, buf.Bytes())
	}
}
