package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/carelink/pkg/models"
)

func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("job is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO jobs (member_user_id, required_caregiving_type, other_requirements, date_posted) VALUES (?, ?, ?, ?)`,
		j.MemberUserID, j.RequiredCaregivingType, j.OtherRequirements, j.DatePosted)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	row := r.conn.QueryRow(ctx, `SELECT job_id, member_user_id, required_caregiving_type, other_requirements, date_posted FROM jobs WHERE job_id = ?`, id)
	j, err := scanJob(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return j, nil
}

func (r *SQLiteRepo) ListJobs(ctx context.Context, limit, offset int) ([]models.Job, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT job_id, member_user_id, required_caregiving_type, other_requirements, date_posted FROM jobs ORDER BY job_id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateJob(ctx context.Context, id int64, j *models.JobUpdate) error {
	if j == nil {
		return fmt.Errorf("job update is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE jobs SET member_user_id = ?, required_caregiving_type = ?, other_requirements = ?, date_posted = ? WHERE job_id = ?`,
		j.MemberUserID, j.RequiredCaregivingType, j.OtherRequirements, j.DatePosted, id)
	return err
}

func (r *SQLiteRepo) DeleteJob(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM jobs WHERE job_id = ?`, id)
	return err
}

func scanJob(scan func(...any) error) (*models.Job, error) {
	var j models.Job
	var memberUserID sql.NullInt64
	var caregivingType, otherRequirements sql.NullString
	if err := scan(&j.JobID, &memberUserID, &caregivingType, &otherRequirements, &j.DatePosted); err != nil {
		return nil, err
	}

	j.MemberUserID = memberUserID.Int64
	j.RequiredCaregivingType = caregivingType.String
	if otherRequirements.Valid {
		j.OtherRequirements = &otherRequirements.String
	}

	return &j, nil
}
