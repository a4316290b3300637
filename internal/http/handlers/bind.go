package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON binds and validates the request body, replying with a generic
// 400 on failure. Clients only ever see the flat message; the specific
// failing rule is attached to the gin context for the request log.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	return bindJSONWith(ctx, out, "Invalid request data")
}

func bindJSONWith(ctx *gin.Context, out interface{}, message string) bool {
	err := ctx.ShouldBindJSON(out)

	if err == nil {
		return true
	}

	var validatorErrs validator.ValidationErrors

	if errors.As(err, &validatorErrs) && len(validatorErrs) > 0 {
		fe := validatorErrs[0]
		_ = ctx.Error(fmt.Errorf("validation failed on %s (%s)", fe.Field(), fe.Tag()))
	} else {
		_ = ctx.Error(err)
	}

	RespondBadRequest(ctx, message)
	return false
}
