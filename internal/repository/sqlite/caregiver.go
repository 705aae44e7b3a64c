package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carelink/carelink/pkg/models"
)

func (r *SQLiteRepo) CreateCaregiver(ctx context.Context, c *models.Caregiver) error {
	if c == nil {
		return fmt.Errorf("caregiver is nil")
	}

	// caregiver_user_id is supplied by the caller; the primary key
	// constraint rejects a duplicate.
	_, err := r.conn.Exec(ctx, `INSERT INTO caregivers (caregiver_user_id, photo, gender, caregiving_type, hourly_rate) VALUES (?, ?, ?, ?, ?)`,
		c.CaregiverUserID, c.Photo, c.Gender, c.CaregivingType, c.HourlyRate)
	return err
}

func (r *SQLiteRepo) GetCaregiver(ctx context.Context, userID int64) (*models.Caregiver, error) {
	row := r.conn.QueryRow(ctx, `SELECT caregiver_user_id, photo, gender, caregiving_type, hourly_rate FROM caregivers WHERE caregiver_user_id = ?`, userID)
	c, err := scanCaregiver(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return c, nil
}

func (r *SQLiteRepo) ListCaregivers(ctx context.Context, limit, offset int) ([]models.Caregiver, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT caregiver_user_id, photo, gender, caregiving_type, hourly_rate FROM caregivers ORDER BY caregiver_user_id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Caregiver
	for rows.Next() {
		c, err := scanCaregiver(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateCaregiver(ctx context.Context, userID int64, c *models.CaregiverUpdate) error {
	if c == nil {
		return fmt.Errorf("caregiver update is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE caregivers SET photo = ?, gender = ?, caregiving_type = ?, hourly_rate = ? WHERE caregiver_user_id = ?`,
		c.Photo, c.Gender, c.CaregivingType, c.HourlyRate, userID)
	return err
}

func (r *SQLiteRepo) DeleteCaregiver(ctx context.Context, userID int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM caregivers WHERE caregiver_user_id = ?`, userID)
	return err
}

func scanCaregiver(scan func(...any) error) (*models.Caregiver, error) {
	var c models.Caregiver
	var photo, gender, caregivingType sql.NullString
	var rate decimal.NullDecimal
	if err := scan(&c.CaregiverUserID, &photo, &gender, &caregivingType, &rate); err != nil {
		return nil, err
	}

	if photo.Valid {
		c.Photo = &photo.String
	}
	c.Gender = gender.String
	c.CaregivingType = caregivingType.String
	if rate.Valid {
		c.HourlyRate = rate.Decimal
	}

	return &c, nil
}
