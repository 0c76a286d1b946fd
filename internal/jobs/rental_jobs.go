package jobs

import (
	"context"
	"time"

	"equiprent-backend/internal/logger"
)

// MarkOverdueRentals marks rentals as OVERDUE if they are past their end_date
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		count, err := jr.rentalRepo.MarkOverdue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}

		logger.Info("Marked rentals as overdue", "count", count)
	})
}

// SendDueReminders emails every customer whose rental is due within the
// configured lead window or already overdue
func (jr *JobRunner) SendDueReminders() {
	jr.runWithRecovery("SendDueReminders", func() {
		ctx := context.Background()

		due, err := jr.reportSvc.DueSoon(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to build due-soon report", "error", err)
			return
		}

		sent := 0
		for i := range due {
			if due[i].Customer.Email == "" {
				logger.Debug("Skipping reminder for customer without email",
					"customer_id", due[i].Customer.ID)
				continue
			}
			if err := jr.emailSvc.SendDueReminder(ctx, &due[i]); err != nil {
				logger.Error("Failed to send due reminder",
					"rental_id", due[i].Rental.ID,
					"customer_id", due[i].Customer.ID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent due reminders", "due", len(due), "sent", sent)
	})
}
