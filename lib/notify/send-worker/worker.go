package notifysendworker

import (
	"context"
	"time"

	"hr-access-backend/config"
	"hr-access-backend/db"
	notifystore "hr-access-backend/lib/notify/store"
	"hr-access-backend/lib/smtp"
	baseworker "hr-access-backend/lib/utils/base-worker"
	"hr-access-backend/lib/utils/helpers"
	"hr-access-backend/models"
)

const (
	workerName = "notify_send_worker"
	batchSize  = 50
)

// StartWorker drains the notification outbox: pending rows are mailed
// oldest first, failures are retried on the next tick until the attempt
// cap is reached.
func StartWorker(ctx context.Context) {
	w := impl{
		store:      notifystore.NewInstance(db.DB),
		fromEmail:  config.Conf.Smtp.FromEmail,
		maxIntents: config.Conf.Notify.MaxIntents,
	}
	interval := time.Duration(config.Conf.Notify.WorkerIntervalSec) * time.Second
	w.BaseImpl = *baseworker.NewInstance(workerName, interval, interval)
	go w.Run(ctx, w.process)
}

type impl struct {
	baseworker.BaseImpl
	store      notifystore.Provider
	fromEmail  string
	maxIntents int
}

func (i impl) process(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.store.ListPendents(batchSize, i.maxIntents)
	if err != nil {
		logger.WithError(err).Error("failed to list pending notifications")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		recLogger := logger.WithField("notification_id", rec.ID)
		sendErr := smtp.Instance.SendEMail(i.fromEmail, rec.Email, rec.Cos, rec.Assumpte)
		if sendErr != nil {
			updMap := map[string]interface{}{
				"intents":     rec.Intents + 1,
				"ultim_error": sendErr.Error(),
			}
			if rec.Intents+1 >= i.maxIntents {
				updMap["estat"] = models.NotificacioError
				recLogger.WithError(sendErr).Error("notification failed permanently")
			} else {
				recLogger.WithError(sendErr).Warn("notification send failed, will retry")
			}
			if err = i.store.Update(rec.ID, updMap); err != nil {
				recLogger.WithError(err).Error("failed to update notification after send error")
			}
			continue
		}
		now := time.Now()
		updMap := map[string]interface{}{
			"estat":          models.NotificacioEnviada,
			"intents":        rec.Intents + 1,
			"data_enviament": now,
			"ultim_error":    "",
		}
		if err = i.store.Update(rec.ID, updMap); err != nil {
			recLogger.WithError(err).Error("failed to mark notification as sent")
		}
	}
}
