package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/carelink/pkg/models"
)

func (r *SQLiteRepo) CreateAddress(ctx context.Context, a *models.Address) error {
	if a == nil {
		return fmt.Errorf("address is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO address (member_user_id, house_number, street, town) VALUES (?, ?, ?, ?)`,
		a.MemberUserID, a.HouseNumber, a.Street, a.Town)
	return err
}

func (r *SQLiteRepo) GetAddress(ctx context.Context, memberUserID int64) (*models.Address, error) {
	row := r.conn.QueryRow(ctx, `SELECT member_user_id, house_number, street, town FROM address WHERE member_user_id = ?`, memberUserID)
	a, err := scanAddress(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return a, nil
}

func (r *SQLiteRepo) ListAddresses(ctx context.Context, limit, offset int) ([]models.Address, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT member_user_id, house_number, street, town FROM address ORDER BY member_user_id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Address
	for rows.Next() {
		a, err := scanAddress(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateAddress(ctx context.Context, memberUserID int64, a *models.AddressUpdate) error {
	if a == nil {
		return fmt.Errorf("address update is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE address SET house_number = ?, street = ?, town = ? WHERE member_user_id = ?`,
		a.HouseNumber, a.Street, a.Town, memberUserID)
	return err
}

func (r *SQLiteRepo) DeleteAddress(ctx context.Context, memberUserID int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM address WHERE member_user_id = ?`, memberUserID)
	return err
}

func scanAddress(scan func(...any) error) (*models.Address, error) {
	var a models.Address
	var houseNumber, street, town sql.NullString
	if err := scan(&a.MemberUserID, &houseNumber, &street, &town); err != nil {
		return nil, err
	}

	a.HouseNumber = houseNumber.String
	a.Street = street.String
	a.Town = town.String

	return &a, nil
}
