package delivery

import (
	"errors"
	"fmt"
	"net/http"

	"product_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type messageResponse struct {
	Message string `json:"message"`
}

// writeError maps a domain failure onto the wire-level error contract. Every
// response is either a single {"message": ...} envelope or, for validation
// failures only, a flat field-to-message object. Anything unrecognized is a
// 500 whose detail is logged but never leaked to the caller.
func writeError(c *gin.Context, log *logrus.Logger, err error) {
	var (
		notFound     *domain.NotFoundError
		validation   *domain.ValidationError
		numberFormat *domain.NumberFormatError
		sortField    *domain.SortFieldError
		requestBody  *domain.RequestBodyError
		param        *domain.ParamError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, messageResponse{Message: notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, validation.Fields)
	case errors.As(err, &numberFormat):
		c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid number format: " + numberFormat.Raw,
		})
	case errors.As(err, &sortField):
		c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid sort parameter: " + sortField.Field,
		})
	case errors.As(err, &requestBody):
		c.JSON(http.StatusBadRequest, messageResponse{
			Message: "Invalid request body: " + requestBody.Detail,
		})
	case errors.As(err, &param):
		c.JSON(http.StatusBadRequest, messageResponse{
			Message: fmt.Sprintf("Invalid parameter '%s': '%s' is not a valid %s",
				param.Name, param.Value, param.Type),
		})
	default:
		log.Errorf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, messageResponse{
			Message: "An unexpected error occurred",
		})
	}
}
