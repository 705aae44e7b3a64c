package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/carelink/pkg/models"
)

func (r *SQLiteRepo) CreateAppointment(ctx context.Context, a *models.Appointment) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("appointment is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO appointments (caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status) VALUES (?, ?, ?, ?, ?, ?)`,
		a.CaregiverUserID, a.MemberUserID, a.AppointmentDate, a.AppointmentTime, a.WorkHours, a.Status)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	row := r.conn.QueryRow(ctx, `SELECT appointment_id, caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status FROM appointments WHERE appointment_id = ?`, id)
	a, err := scanAppointment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return a, nil
}

func (r *SQLiteRepo) ListAppointments(ctx context.Context, limit, offset int) ([]models.Appointment, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT appointment_id, caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status FROM appointments ORDER BY appointment_id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateAppointment(ctx context.Context, id int64, a *models.AppointmentUpdate) error {
	if a == nil {
		return fmt.Errorf("appointment update is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE appointments SET caregiver_user_id = ?, member_user_id = ?, appointment_date = ?, appointment_time = ?, work_hours = ?, status = ? WHERE appointment_id = ?`,
		a.CaregiverUserID, a.MemberUserID, a.AppointmentDate, a.AppointmentTime, a.WorkHours, a.Status, id)
	return err
}

func (r *SQLiteRepo) DeleteAppointment(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = ?`, id)
	return err
}

func scanAppointment(scan func(...any) error) (*models.Appointment, error) {
	var a models.Appointment
	var caregiverUserID, memberUserID, workHours sql.NullInt64
	var status sql.NullString
	if err := scan(&a.AppointmentID, &caregiverUserID, &memberUserID, &a.AppointmentDate, &a.AppointmentTime, &workHours, &status); err != nil {
		return nil, err
	}

	a.CaregiverUserID = caregiverUserID.Int64
	a.MemberUserID = memberUserID.Int64
	a.WorkHours = workHours.Int64
	a.Status = status.String

	return &a, nil
}
