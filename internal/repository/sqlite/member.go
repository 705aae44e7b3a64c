package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/carelink/pkg/models"
)

func (r *SQLiteRepo) CreateMember(ctx context.Context, m *models.Member) error {
	if m == nil {
		return fmt.Errorf("member is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO members (member_user_id, house_rules) VALUES (?, ?)`,
		m.MemberUserID, m.HouseRules)
	return err
}

func (r *SQLiteRepo) GetMember(ctx context.Context, userID int64) (*models.Member, error) {
	row := r.conn.QueryRow(ctx, `SELECT member_user_id, house_rules FROM members WHERE member_user_id = ?`, userID)
	var m models.Member
	var rules sql.NullString
	if err := row.Scan(&m.MemberUserID, &rules); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	m.HouseRules = rules.String

	return &m, nil
}

func (r *SQLiteRepo) ListMembers(ctx context.Context, limit, offset int) ([]models.Member, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT member_user_id, house_rules FROM members ORDER BY member_user_id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Member
	for rows.Next() {
		var m models.Member
		var rules sql.NullString
		if err := rows.Scan(&m.MemberUserID, &rules); err != nil {
			return nil, err
		}
		m.HouseRules = rules.String
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateMember(ctx context.Context, userID int64, m *models.MemberUpdate) error {
	if m == nil {
		return fmt.Errorf("member update is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE members SET house_rules = ? WHERE member_user_id = ?`, m.HouseRules, userID)
	return err
}

func (r *SQLiteRepo) DeleteMember(ctx context.Context, userID int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM members WHERE member_user_id = ?`, userID)
	return err
}
