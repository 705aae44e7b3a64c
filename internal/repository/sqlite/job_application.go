package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/carelink/pkg/models"
)

func (r *SQLiteRepo) CreateJobApplication(ctx context.Context, a *models.JobApplication) error {
	if a == nil {
		return fmt.Errorf("job application is nil")
	}

	// the composite primary key rejects a second application from the same
	// caregiver for the same job
	_, err := r.conn.Exec(ctx, `INSERT INTO job_applications (caregiver_user_id, job_id, date_applied) VALUES (?, ?, ?)`,
		a.CaregiverUserID, a.JobID, a.DateApplied)
	return err
}

func (r *SQLiteRepo) GetJobApplication(ctx context.Context, caregiverUserID, jobID int64) (*models.JobApplication, error) {
	row := r.conn.QueryRow(ctx, `SELECT caregiver_user_id, job_id, date_applied FROM job_applications WHERE caregiver_user_id = ? AND job_id = ?`, caregiverUserID, jobID)
	var a models.JobApplication
	if err := row.Scan(&a.CaregiverUserID, &a.JobID, &a.DateApplied); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &a, nil
}

func (r *SQLiteRepo) ListJobApplications(ctx context.Context, limit, offset int) ([]models.JobApplication, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT caregiver_user_id, job_id, date_applied FROM job_applications ORDER BY caregiver_user_id, job_id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.JobApplication
	for rows.Next() {
		var a models.JobApplication
		if err := rows.Scan(&a.CaregiverUserID, &a.JobID, &a.DateApplied); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) DeleteJobApplication(ctx context.Context, caregiverUserID, jobID int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM job_applications WHERE caregiver_user_id = ? AND job_id = ?`, caregiverUserID, jobID)
	return err
}
