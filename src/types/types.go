package types

// Answer is the tri-state attendance response for a roster player. A player
// with no recorded response is ANSWER_PENDING, never a missing map entry on
// display paths.
type Answer string

const (
	ANSWER_PENDING     Answer = "pending"
	ANSWER_PLAYING     Answer = "playing"
	ANSWER_NOT_PLAYING Answer = "not_playing"
)

func (a Answer) Valid() bool {
	switch a {
	case ANSWER_PENDING, ANSWER_PLAYING, ANSWER_NOT_PLAYING:
		return true
	}
	return false
}

// Schedule is a recurring rule used to compute when the open game expires.
type Schedule struct {
	Cron     string `json:"cron"`
	Timezone string `json:"tz"`
}

// TeamSettings are display-only fields shown on the sign-up page.
type TeamSettings struct {
	Location string `json:"location,omitempty"`
	TimeInfo string `json:"time_info,omitempty"`
	Weekday  int    `json:"weekday,omitempty"`
}

type CreateTeamRequestBody struct {
	Name string `json:"name" binding:"required"`
}

type AddPlayersRequestBody struct {
	Names string `json:"names" binding:"required"`
}

type UpdateSettingsRequestBody struct {
	Location *string `json:"location,omitempty"`
	TimeInfo *string `json:"time_info,omitempty"`
	Weekday  *int    `json:"weekday,omitempty" binding:"omitempty,min=1,max=7"`
	Cron     *string `json:"cron,omitempty" binding:"omitempty,cronexpr"`
	Timezone *string `json:"tz,omitempty" binding:"omitempty,timezone"`
}

type OpenGameRequestBody struct {
	Description string `json:"description,omitempty"`
}

type RecordAnswerRequestBody struct {
	PlayerID string `json:"player_id" binding:"required"`
	Answer   Answer `json:"answer" binding:"required,oneof=pending playing not_playing"`
}

type AddGuestsRequestBody struct {
	Names string `json:"names" binding:"required"`
}

type RemoveGuestRequestBody struct {
	Name string `json:"name" binding:"required"`
}

type AddCommentRequestBody struct {
	Text string `json:"text" binding:"required"`
}

type TeamRequestParams struct {
	TeamKey string `uri:"teamkey" binding:"required"`
}

type PlayerRequestParams struct {
	PlayerID string `uri:"playerid" binding:"required"`
}

type AttendanceEntry struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Answer   Answer `json:"answer"`
}

type GameView struct {
	Description string            `json:"description,omitempty"`
	Attendance  []AttendanceEntry `json:"attendance"`
	Guests      []string          `json:"guests,omitempty"`
	Comments    []string          `json:"comments,omitempty"`
	Summary     int               `json:"summary"`
}

type TeamView struct {
	Name     string        `json:"name"`
	Settings *TeamSettings `json:"settings,omitempty"`
	Open     bool          `json:"open"`
	Game     *GameView     `json:"game,omitempty"`
}
