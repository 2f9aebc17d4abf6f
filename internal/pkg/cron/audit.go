package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitekhata/labour-backend-go/internal/domain/audit"
)

// AuditJobs keeps the audit trail bounded: entries older than three
// months move to the archive table once a day.
type AuditJobs struct {
	auditRepo audit.AuditRepository
}

func NewAuditJobs(auditRepo audit.AuditRepository) *AuditJobs {
	return &AuditJobs{auditRepo: auditRepo}
}

func (j *AuditJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("archive_audit_logs", 24*time.Hour, j.ArchiveOldEntries)
}

func (j *AuditJobs) ArchiveOldEntries(ctx context.Context) error {
	cutoff := time.Now().UTC().AddDate(0, -3, 0)

	moved, err := j.auditRepo.ArchiveBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if moved > 0 {
		slog.Info("Cron: Archived audit log entries", "count", moved, "cutoff", cutoff)
	}
	return nil
}
