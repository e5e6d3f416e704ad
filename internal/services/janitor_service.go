package services

import (
	"errors"
	"sync"

	"stashed/internal/config"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor periodically removes expired sessions so the sessions table does
// not grow without bound.
type Janitor struct {
	authService   AuthService
	logService    LogService
	configuration *config.Configuration
	purging       bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	authService AuthService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		authService:   authService,
		logService:    logService,
		configuration: configuration,
		purging:       false,
		mutex:         sync.Mutex{},
		cron:          cron.New(),
	}
}

func (j *Janitor) StartPurgeCycle() {
	j.logService.Log.Debug("starting session purge job")

	schedule := j.configuration.Auth.PurgeSchedule
	_, err := j.cron.AddFunc(schedule, func() {
		j.mutex.Lock()
		if j.purging {
			j.mutex.Unlock()
			return
		}
		j.purging = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.purging = false
			j.mutex.Unlock()
		}()
		j.purge()
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "session-purge",
			"error": err.Error(),
		}).Error("Failed to start session purge job")
		return
	}
	j.cron.Start()
}

// ForcePurge runs one purge immediately, off the cron schedule.
func (j *Janitor) ForcePurge() error {
	j.mutex.Lock()
	if j.purging {
		j.mutex.Unlock()
		return errors.New("a purge is already in progress")
	}
	j.purging = true
	j.mutex.Unlock()

	defer func() {
		j.mutex.Lock()
		j.purging = false
		j.mutex.Unlock()
	}()
	j.purge()
	return nil
}

func (j *Janitor) Stop() {
	j.cron.Stop()
}

func (j *Janitor) purge() {
	removed, err := j.authService.PurgeExpired()
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "session-purge",
			"error": err.Error(),
		}).Error("Failed to purge expired sessions")
		return
	}
	if removed > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":     "session-purge",
			"removed": removed,
		}).Info("Purged expired sessions")
	}
}
