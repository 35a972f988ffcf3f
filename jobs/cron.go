package jobs

import (
	"log"
	"time"

	"orion-pms/constants"

	"github.com/robfig/cron/v3"
)

// RateHorizonFiller keeps the pricing calendar populated ahead of today.
type RateHorizonFiller interface {
	EnsureHorizon(from time.Time, days int) (int, error)
}

// InitCronJobs schedules the nightly rate-horizon roll and starts the
// scheduler.
func InitCronJobs(c *cron.Cron, calendar RateHorizonFiller) error {
	_, err := c.AddFunc("0 3 * * *", func() {
		n, err := calendar.EnsureHorizon(time.Now(), constants.RateHorizonDays)
		if err != nil {
			log.Printf("rate horizon roll failed: %v", err)
			return
		}
		log.Printf("rate horizon ensured (%d rows checked)", n)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized")
	return nil
}
