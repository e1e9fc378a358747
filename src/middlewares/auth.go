package middlewares

import (
	"errors"
	"log"
	"net/http"

	"nextgame/src/common"
	"nextgame/src/types"

	"github.com/gin-gonic/gin"
)

// TeamAdmin authorizes requests carrying the team key and admin secret in the
// path. An unknown key and a wrong secret are both a bare 404 so existing
// team keys cannot be probed.
func TeamAdmin(ctx *gin.Context) {
	teamKey := ctx.Param("teamkey")
	secret := ctx.Param("secret")
	team, err := common.AuthorizeTeam(ctx, teamKey, secret)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrUnauthorized) {
			ctx.AbortWithStatus(http.StatusNotFound)
			return
		}
		log.Printf("Error authorizing team %s: %s\n", teamKey, err.Error())
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Set("team_key", teamKey)
	ctx.Set("team", team)
}
