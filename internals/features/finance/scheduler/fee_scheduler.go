// internals/features/finance/scheduler/fee_scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"lesku_backend/internals/configs"
	"lesku_backend/internals/features/finance/notifier"
	"lesku_backend/internals/features/finance/service"
)

// StartFeeCycleScheduler memasang SATU jadwal bulanan untuk seluruh
// pipeline (snapshot → reset → notify). Timezone eksplisit dari ENV,
// bukan asumsi hardcode.
func StartFeeCycleScheduler(db *gorm.DB) *cron.Cron {
	schedule := configs.GetEnv("FEE_CRON_SCHEDULE", "0 0 8 * *") // 00:00 tanggal 8
	tzName := configs.GetEnv("FEE_CRON_TZ", "Asia/Kolkata")

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("[FEE-CYCLE] timezone %q tidak dikenal, pakai UTC: %v", tzName, err)
		loc = time.UTC
	}

	sender := notifier.NewFromEnv()

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err = c.AddFunc(schedule, func() {
		service.RunFeeCycle(db, sender, time.Now().In(loc))
	})
	if err != nil {
		log.Fatalf("[FEE-CYCLE] add cron gagal: %v", err)
	}

	log.Printf("[FEE-CYCLE] started schedule=%q tz=%s", schedule, loc)
	c.Start()
	return c
}
