package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrors shapes a binding failure into the errors-list response body.
// Every violation is collected, not just the first.
func bindingErrors(err error) gin.H {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		errs := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			errs = append(errs, gin.H{
				"field": fe.Field(),
				"error": "failed on the '" + fe.Tag() + "' rule",
			})
		}
		return gin.H{"errors": errs}
	}
	return gin.H{"errors": []gin.H{{"error": err.Error()}}}
}

// abortValidation writes the 400 validation response
func abortValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, bindingErrors(err))
}
