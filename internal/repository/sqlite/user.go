package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/carelink/pkg/models"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO users (email, given_name, surname, city, phone_number, profile_description, password) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Email, u.GivenName, u.Surname, u.City, u.PhoneNumber, u.ProfileDescription, u.Password)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT user_id, email, given_name, surname, city, phone_number, profile_description, password FROM users WHERE user_id = ?`, id)
	u, err := scanUser(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return u, nil
}

func (r *SQLiteRepo) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT user_id, email, given_name, surname, city, phone_number, profile_description, password FROM users ORDER BY user_id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}

	return out, rows.Err()
}

// UpdateUser writes every mutable column from the partial record; fields the
// caller did not supply are written as NULL, not preserved. A missing key
// updates zero rows and is not an error.
func (r *SQLiteRepo) UpdateUser(ctx context.Context, id int64, u *models.UserUpdate) error {
	if u == nil {
		return fmt.Errorf("user update is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE users SET email = ?, given_name = ?, surname = ?, city = ?, phone_number = ?, profile_description = ?, password = ? WHERE user_id = ?`,
		u.Email, u.GivenName, u.Surname, u.City, u.PhoneNumber, u.ProfileDescription, u.Password, id)
	return err
}

func (r *SQLiteRepo) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	return err
}

func scanUser(scan func(...any) error) (*models.User, error) {
	var u models.User
	var email, givenName, surname, city, phone, profile, password sql.NullString
	if err := scan(&u.UserID, &email, &givenName, &surname, &city, &phone, &profile, &password); err != nil {
		return nil, err
	}

	u.Email = email.String
	u.GivenName = givenName.String
	u.Surname = surname.String
	u.City = city.String
	u.PhoneNumber = phone.String
	if profile.Valid {
		u.ProfileDescription = &profile.String
	}
	u.Password = password.String

	return &u, nil
}
