package main

import (
	"fmt"
	"log"
	"net/http"

	"nextgame/src/common"
	"nextgame/src/config"
	"nextgame/src/middlewares"
	"nextgame/src/models"
	"nextgame/src/types"
	"nextgame/src/utils"

	"github.com/gin-gonic/gin"
)

func teamHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/teams", func(ctx *gin.Context) {
			var body types.CreateTeamRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			key, secret, err := common.CreateTeam(ctx, body.Name)
			if err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			appHost := config.AppHost()
			// The admin secret is only ever returned here
			ctx.JSON(http.StatusCreated, gin.H{
				"team_key":     key,
				"admin_secret": secret,
				"team_url":     fmt.Sprintf("%s/team/%s", appHost, key),
				"admin_url":    fmt.Sprintf("%s/admin/%s/%s", appHost, key, secret),
			})
		})
	return g
}

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	admin := g.Group("/admin/:teamkey/:secret")
	admin.Use(middlewares.TeamAdmin)
	admin.
		GET("", func(ctx *gin.Context) {
			team := ctx.MustGet("team").(*models.Team)
			teamKey := ctx.GetString("team_key")
			view, err := common.BuildTeamView(ctx, teamKey, team)
			if err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"data":     view,
				"roster":   team.Roster,
				"schedule": team.Schedule,
			})
		}).
		POST("/players", func(ctx *gin.Context) {
			var body types.AddPlayersRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			team := ctx.MustGet("team").(*models.Team)
			teamKey := ctx.GetString("team_key")
			ids, err := common.AddPlayers(ctx, teamKey, team, body.Names)
			if err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"player_ids": ids, "roster": team.Roster})
		}).
		DELETE("/players/:playerid", func(ctx *gin.Context) {
			var params types.PlayerRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			team := ctx.MustGet("team").(*models.Team)
			teamKey := ctx.GetString("team_key")
			if err := common.RemovePlayer(ctx, teamKey, team, params.PlayerID); err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/settings", func(ctx *gin.Context) {
			var body types.UpdateSettingsRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			team := ctx.MustGet("team").(*models.Team)
			teamKey := ctx.GetString("team_key")
			if err := common.UpdateSettings(ctx, teamKey, team, &body); err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/games", func(ctx *gin.Context) {
			var body types.OpenGameRequestBody
			// Description is optional; an empty body is fine
			if ctx.Request.ContentLength > 0 {
				if err := ctx.ShouldBindJSON(&body); err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
			team := ctx.MustGet("team").(*models.Team)
			teamKey := ctx.GetString("team_key")
			gameKey, err := common.OpenGame(ctx, teamKey, team, body.Description)
			if err != nil {
				log.Printf("Error opening game for team %s: %s\n", teamKey, err.Error())
				abortWithDomainError(ctx, err)
				return
			}
			go utils.NotifyGameOpen(teamKey, team.Name)
			ctx.JSON(http.StatusCreated, gin.H{
				"game_key":   gameKey,
				"signup_url": fmt.Sprintf("%s/team/%s", config.AppHost(), teamKey),
			})
		}).
		DELETE("/games", func(ctx *gin.Context) {
			team := ctx.MustGet("team").(*models.Team)
			teamKey := ctx.GetString("team_key")
			if err := common.ResetGame(ctx, teamKey, team); err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return admin
}
