package store

import (
	"fmt"
	"time"

	"salesboard/internal/model"
)

// InsertUploads 在一个事务内记录同一批上传文件，返回各记录 ID（与入参顺序一致）。
// 任一条失败时整批不写入。
func (s *Store) InsertUploads(uploads []model.Upload) ([]int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO uploads (batch_id, category, original_name, stored_path, size, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(uploads))
	for _, u := range uploads {
		createdAt := u.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		res, err := stmt.Exec(u.BatchID, u.Partition, u.OriginalName, u.StoredPath, u.Size, createdAt.UTC())
		if err != nil {
			return nil, fmt.Errorf("failed to insert upload %s: %w", u.OriginalName, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get upload id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit uploads: %w", err)
	}
	return ids, nil
}

// UploadQueryOptions 上传记录查询条件
type UploadQueryOptions struct {
	Partition *string
	Limit     int
}

// ListUploads 按时间倒序列出上传记录
func (s *Store) ListUploads(opts UploadQueryOptions) ([]model.Upload, error) {
	query := `
		SELECT id, batch_id, category, original_name, stored_path, size, created_at
		FROM uploads
	`
	var args []interface{}
	if opts.Partition != nil {
		query += ` WHERE category = ?`
		args = append(args, *opts.Partition)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query uploads failed: %w", err)
	}
	defer rows.Close()

	out := make([]model.Upload, 0)
	for rows.Next() {
		var u model.Upload
		if err := rows.Scan(&u.ID, &u.BatchID, &u.Partition, &u.OriginalName, &u.StoredPath, &u.Size, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload failed: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate uploads failed: %w", err)
	}
	return out, nil
}

// CountUploads 统计某分区的上传文件数
func (s *Store) CountUploads(partition string) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM uploads WHERE category = ?`, partition).Scan(&n); err != nil {
		return 0, fmt.Errorf("count uploads failed: %w", err)
	}
	return n, nil
}
