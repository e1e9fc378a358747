package boot

import (
	"context"
	"log"
	"time"

	"nextgame/src/common"
	"nextgame/src/lib"

	"github.com/go-co-op/gocron/v2"
)

// InitScheduler starts the background scheduler with the stale-pointer sweep.
// Game documents expire on their own in the store; the sweep only repairs the
// team side afterwards, so the interval is not timing-sensitive.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	j, err := sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			common.SweepStaleGames(context.Background())
		}),
	)
	if err != nil {
		log.Printf("Error scheduling sweep job: %s\n", err.Error())
		return
	}
	log.Printf("Job ID: %s\n", j.ID().String())
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}
