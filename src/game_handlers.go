package main

import (
	"errors"
	"log"
	"net/http"

	"nextgame/src/common"
	"nextgame/src/models"
	"nextgame/src/types"

	"github.com/gin-gonic/gin"
)

// Public capability-URL surface: anyone holding the team key can view the
// sign-up sheet and record answers, guests and comments.
func gameHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/team/:teamkey", func(ctx *gin.Context) {
			team, teamKey, ok := bindTeam(ctx)
			if !ok {
				return
			}
			view, err := common.BuildTeamView(ctx, teamKey, team)
			if err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": view})
		}).
		POST("/team/:teamkey/answers", func(ctx *gin.Context) {
			var body types.RecordAnswerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			team, _, ok := bindTeam(ctx)
			if !ok {
				return
			}
			if err := common.RecordAttendance(ctx, team, body.PlayerID, body.Answer); err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/team/:teamkey/guests", func(ctx *gin.Context) {
			var body types.AddGuestsRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			team, _, ok := bindTeam(ctx)
			if !ok {
				return
			}
			if err := common.AddGuests(ctx, team, body.Names); err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusCreated)
		}).
		DELETE("/team/:teamkey/guests", func(ctx *gin.Context) {
			var body types.RemoveGuestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			team, _, ok := bindTeam(ctx)
			if !ok {
				return
			}
			if err := common.RemoveGuest(ctx, team, body.Name); err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/team/:teamkey/comments", func(ctx *gin.Context) {
			var body types.AddCommentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			team, _, ok := bindTeam(ctx)
			if !ok {
				return
			}
			if err := common.AddComment(ctx, team, body.Text); err != nil {
				abortWithDomainError(ctx, err)
				return
			}
			ctx.Status(http.StatusCreated)
		})
	return g
}

func bindTeam(ctx *gin.Context) (*models.Team, string, bool) {
	var params types.TeamRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.Status(http.StatusBadRequest)
		return nil, "", false
	}
	team, err := common.GetTeam(ctx, params.TeamKey)
	if err != nil {
		abortWithDomainError(ctx, err)
		return nil, "", false
	}
	return team, params.TeamKey, true
}

func abortWithDomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrGameMissing):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no game open"})
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrUnauthorized):
		// indistinguishable on purpose
		ctx.Status(http.StatusNotFound)
	default:
		log.Printf("Unexpected error: %s\n", err.Error())
		ctx.Status(http.StatusInternalServerError)
	}
}
