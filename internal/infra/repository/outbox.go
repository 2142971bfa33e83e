package repository

import (
	"context"
	"time"

	"ticketera/internal/infra"
	"ticketera/internal/infra/db"
	"ticketera/internal/usecase/shared"

	"github.com/google/uuid"
)

// Job is one claimed notification_jobs row.
type Job struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

var _ shared.OutboxRepository = (*OutboxRepository)(nil)

func (r *OutboxRepository) Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
		 VALUES ($1, $2, $3, $4, 'queued')`,
		kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

// claimDueSQL bumps attempts while claiming so a crashed worker cannot
// retry a job forever without the counter moving. SKIP LOCKED keeps
// concurrent dispatchers from fighting over the same rows.
const claimDueSQL = `
UPDATE notification_jobs
SET attempts = attempts + 1, updated_at = now()
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE status = 'queued' AND run_at <= $1
    ORDER BY run_at
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, attempts`

func (r *OutboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]Job, error) {
	rows, err := r.db.Query(ctx, claimDueSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due notification jobs", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notification_jobs SET status = 'sent', last_error = NULL, updated_at = now() WHERE id = $1`,
		id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkFailed requeues the job with a delay, or parks it as failed once the
// attempt budget is spent.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time, maxAttempts int32) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notification_jobs
		 SET status = CASE WHEN attempts >= $4 THEN 'failed' ELSE 'queued' END,
		     run_at = $3, last_error = $2, updated_at = now()
		 WHERE id = $1`,
		id, lastError, retryAt, maxAttempts)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
