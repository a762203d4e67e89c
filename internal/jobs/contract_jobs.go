package jobs

import (
	"context"
	"strings"
	"time"

	"motorent-backend/internal/logger"
)

// SendExpiryReminders emails every customer whose active contract ends within
// the configured number of days. Contracts stay ACTIVE past their end date;
// staff complete them when the bike comes back.
func (jr *JobRunner) SendExpiryReminders() {
	jr.runWithRecovery("SendExpiryReminders", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().
			AddDate(0, 0, jr.config.Scheduler.ExpiryReminderDays).
			Format("2006-01-02")

		query := `
			SELECT rc.id, rc.end_date, c.name, c.email
			FROM rental_contracts rc
			JOIN customers c ON c.id = rc.customer_id
			WHERE rc.status = 'ACTIVE'
			  AND rc.end_date <= $1
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to load expiring contracts", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				contractID    int32
				endDate       string
				name, emailTo string
			)
			if err := rows.Scan(&contractID, &endDate, &name, &emailTo); err != nil {
				logger.Error("Failed to scan expiring contract", "error", err)
				continue
			}
			if err := jr.email.SendExpiryReminder(ctx, emailTo, name, contractID, endDate); err != nil {
				logger.Error("Failed to send expiry reminder", "contract_id", contractID, "error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expiring contracts", "error", err)
			return
		}

		logger.Info("Sent expiry reminders", "count", count)
	})
}

// CleanupOrphanImages deletes stored incident images that no incident record
// references anymore.
func (jr *JobRunner) CleanupOrphanImages() {
	jr.runWithRecovery("CleanupOrphanImages", func() {
		ctx := context.Background()

		stored, err := jr.images.ListFolder(ctx, "incidents")
		if err != nil {
			logger.Error("Failed to list stored incident images", "error", err)
			return
		}
		if len(stored) == 0 {
			return
		}

		rows, err := jr.db.QueryContext(ctx, `SELECT unnest(image_paths) FROM incidents WHERE image_paths IS NOT NULL`)
		if err != nil {
			logger.Error("Failed to load referenced image paths", "error", err)
			return
		}
		defer rows.Close()

		referenced := make(map[string]bool)
		for rows.Next() {
			var p string
			if err := rows.Scan(&p); err != nil {
				logger.Error("Failed to scan image path", "error", err)
				continue
			}
			referenced[p] = true
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating image paths", "error", err)
			return
		}

		deleted := 0
		for _, p := range stored {
			if referenced[p] || !strings.HasPrefix(p, "incidents/") {
				continue
			}
			found, err := jr.images.DeleteFile(ctx, p)
			if err != nil {
				logger.Error("Failed to delete orphan image", "path", p, "error", err)
				continue
			}
			if found {
				deleted++
			}
		}

		logger.Info("Cleaned up orphan incident images", "deleted", deleted, "stored", len(stored))
	})
}
