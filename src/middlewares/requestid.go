package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestID(ctx *gin.Context) {
	rid := ctx.GetHeader("X-Request-ID")
	if rid == "" {
		rid = uuid.NewString()
	}
	ctx.Set("request_id", rid)
	ctx.Header("X-Request-ID", rid)
	ctx.Next()
}
