package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreateGroup persists a new group with all of its children.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	now := time.Now().Unix()
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = now
	}
	group.UpdatedAt = now
	assignIDs(group, now)

	if err := checkGroup(group); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.rebind(
		"INSERT INTO groups (id, name, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"),
		group.ID, group.Name, group.OwnerID, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	if err := s.insertChildren(ctx, tx, group); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGroup retrieves a complete group snapshot by ID.
func (s *Store) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx, s.rebind(
		"SELECT id, name, owner_id, created_at, updated_at FROM groups WHERE id = ?"),
		groupID,
	).Scan(&group.ID, &group.Name, &group.OwnerID, &group.CreatedAt, &group.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if err := s.loadChildren(ctx, s.db, group); err != nil {
		return nil, err
	}
	if err := checkStored(group); err != nil {
		return nil, err
	}
	return group, nil
}

// ListGroups retrieves all groups, optionally filtered by owner, newest first.
func (s *Store) ListGroups(ctx context.Context, ownerID string) ([]*models.Group, error) {
	query := "SELECT id, name, owner_id, created_at, updated_at FROM groups"
	var args []any
	if ownerID != "" {
		query += " WHERE owner_id = ?"
		args = append(args, ownerID)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.OwnerID, &group.CreatedAt, &group.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	// Children are loaded after the cursor is closed; SQLite runs with a
	// single connection.
	for _, group := range groups {
		if err := s.loadChildren(ctx, s.db, group); err != nil {
			return nil, err
		}
		if err := checkStored(group); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// SaveGroup replaces the stored snapshot of an existing group.
func (s *Store) SaveGroup(ctx context.Context, group *models.Group) error {
	now := time.Now().Unix()
	group.UpdatedAt = now
	assignIDs(group, now)

	if err := checkGroup(group); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, s.rebind(
		"UPDATE groups SET name = ?, owner_id = ?, updated_at = ? WHERE id = ?"),
		group.Name, group.OwnerID, group.UpdatedAt, group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	} else if n == 0 {
		return fmt.Errorf("group %s: %w", group.ID, storage.ErrNotFound)
	}

	if err := s.deleteChildren(ctx, tx, group.ID); err != nil {
		return err
	}
	if err := s.insertChildren(ctx, tx, group); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteGroup removes a group by ID along with its children.
func (s *Store) DeleteGroup(ctx context.Context, groupID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.deleteChildren(ctx, tx, groupID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, s.rebind("DELETE FROM groups WHERE id = ?"), groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	} else if n == 0 {
		return fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// assignIDs fills in missing IDs and timestamps on the group's children.
func assignIDs(group *models.Group, now int64) {
	for i := range group.Members {
		if group.Members[i].ID == "" {
			group.Members[i].ID = uuid.New().String()
		}
		if group.Members[i].Status == "" {
			group.Members[i].Status = models.MemberStatusPlaceholder
		}
	}
	for i := range group.Transactions {
		t := &group.Transactions[i]
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.CreatedAt == 0 {
			t.CreatedAt = now
		}
		if t.UpdatedAt == 0 {
			t.UpdatedAt = t.CreatedAt
		}
		if t.Date == 0 {
			t.Date = t.CreatedAt
		}
	}
	for i := range group.Payments {
		p := &group.Payments[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if p.CreatedAt == 0 {
			p.CreatedAt = now
		}
		if p.UpdatedAt == 0 {
			p.UpdatedAt = p.CreatedAt
		}
		if p.Date == 0 {
			p.Date = p.CreatedAt
		}
	}
}

func (s *Store) insertChildren(ctx context.Context, q execer, group *models.Group) error {
	for i, m := range group.Members {
		_, err := q.ExecContext(ctx, s.rebind(
			"INSERT INTO members (id, group_id, position, name, status) VALUES (?, ?, ?, ?, ?)"),
			m.ID, group.ID, i, m.Name, string(m.Status),
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}

	for i, t := range group.Transactions {
		_, err := q.ExecContext(ctx, s.rebind(
			`INSERT INTO transactions (id, group_id, position, description, amount, payer_id, policy, date, category, notes, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			t.ID, group.ID, i, t.Description, t.Amount, t.PayerID, string(t.Policy),
			t.Date, t.Category, t.Notes, t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}

		for j, split := range t.Splits {
			_, err := q.ExecContext(ctx, s.rebind(
				"INSERT INTO splits (transaction_id, position, member_id, amount, percentage, shares) VALUES (?, ?, ?, ?, ?, ?)"),
				t.ID, j, split.MemberID, split.Amount, nullFloat(split.Percentage), nullFloat(split.Shares),
			)
			if err != nil {
				return fmt.Errorf("failed to insert split: %w", err)
			}
		}
	}

	for i, p := range group.Payments {
		_, err := q.ExecContext(ctx, s.rebind(
			`INSERT INTO payments (id, group_id, position, from_id, to_id, amount, date, notes, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			p.ID, group.ID, i, p.FromID, p.ToID, p.Amount, p.Date, p.Notes, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	for i, c := range group.CustomCategories {
		_, err := q.ExecContext(ctx, s.rebind(
			"INSERT INTO group_categories (group_id, position, name) VALUES (?, ?, ?)"),
			group.ID, i, c,
		)
		if err != nil {
			return fmt.Errorf("failed to insert category: %w", err)
		}
	}
	return nil
}

func (s *Store) deleteChildren(ctx context.Context, q execer, groupID string) error {
	stmts := []struct{ what, query string }{
		{"splits", "DELETE FROM splits WHERE transaction_id IN (SELECT id FROM transactions WHERE group_id = ?)"},
		{"transactions", "DELETE FROM transactions WHERE group_id = ?"},
		{"payments", "DELETE FROM payments WHERE group_id = ?"},
		{"members", "DELETE FROM members WHERE group_id = ?"},
		{"categories", "DELETE FROM group_categories WHERE group_id = ?"},
	}
	for _, st := range stmts {
		if _, err := q.ExecContext(ctx, s.rebind(st.query), groupID); err != nil {
			return fmt.Errorf("failed to delete %s: %w", st.what, err)
		}
	}
	return nil
}

func (s *Store) loadChildren(ctx context.Context, q execer, group *models.Group) error {
	if err := s.loadMembers(ctx, q, group); err != nil {
		return err
	}
	if err := s.loadTransactions(ctx, q, group); err != nil {
		return err
	}
	if err := s.loadPayments(ctx, q, group); err != nil {
		return err
	}
	return s.loadCategories(ctx, q, group)
}

func (s *Store) loadMembers(ctx context.Context, q execer, group *models.Group) error {
	rows, err := q.QueryContext(ctx, s.rebind(
		"SELECT id, name, status FROM members WHERE group_id = ? ORDER BY position"),
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Member
		var status string
		if err := rows.Scan(&m.ID, &m.Name, &status); err != nil {
			return fmt.Errorf("failed to scan member: %w", err)
		}
		m.Status = models.MemberStatus(status)
		group.Members = append(group.Members, m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate members: %w", err)
	}
	return nil
}

func (s *Store) loadTransactions(ctx context.Context, q execer, group *models.Group) error {
	rows, err := q.QueryContext(ctx, s.rebind(
		`SELECT id, description, amount, payer_id, policy, date, category, notes, created_at, updated_at
		 FROM transactions WHERE group_id = ? ORDER BY position`),
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}
	for rows.Next() {
		var t models.Transaction
		var policy string
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &t.PayerID, &policy,
			&t.Date, &t.Category, &t.Notes, &t.CreatedAt, &t.UpdatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Policy = models.SplitPolicy(policy)
		group.Transactions = append(group.Transactions, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate transactions: %w", err)
	}

	if len(group.Transactions) == 0 {
		return nil
	}

	index := make(map[string]int, len(group.Transactions))
	for i, t := range group.Transactions {
		index[t.ID] = i
	}

	splitRows, err := q.QueryContext(ctx, s.rebind(
		`SELECT s.transaction_id, s.member_id, s.amount, s.percentage, s.shares
		 FROM splits s JOIN transactions t ON t.id = s.transaction_id
		 WHERE t.group_id = ? ORDER BY t.position, s.position`),
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var (
			transactionID      string
			split              models.Split
			percentage, shares sql.NullFloat64
		)
		if err := splitRows.Scan(&transactionID, &split.MemberID, &split.Amount, &percentage, &shares); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		split.Percentage = floatPtr(percentage)
		split.Shares = floatPtr(shares)

		i, ok := index[transactionID]
		if !ok {
			continue
		}
		group.Transactions[i].Splits = append(group.Transactions[i].Splits, split)
	}
	if err := splitRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate splits: %w", err)
	}
	return nil
}

func (s *Store) loadPayments(ctx context.Context, q execer, group *models.Group) error {
	rows, err := q.QueryContext(ctx, s.rebind(
		`SELECT id, from_id, to_id, amount, date, notes, created_at, updated_at
		 FROM payments WHERE group_id = ? ORDER BY position`),
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.FromID, &p.ToID, &p.Amount, &p.Date, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan payment: %w", err)
		}
		group.Payments = append(group.Payments, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate payments: %w", err)
	}
	return nil
}

func (s *Store) loadCategories(ctx context.Context, q execer, group *models.Group) error {
	rows, err := q.QueryContext(ctx, s.rebind(
		"SELECT name FROM group_categories WHERE group_id = ? ORDER BY position"),
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan category: %w", err)
		}
		group.CustomCategories = append(group.CustomCategories, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate categories: %w", err)
	}
	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
