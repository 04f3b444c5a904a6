package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var uploadsSchema string

// dsnOptions WAL 允许读上传记录时不阻塞写入；busy_timeout 单位为毫秒
const dsnOptions = "?_journal_mode=WAL&_busy_timeout=5000"

// Store 上传日志。只记录收到的原始文件，汇总结果不落库。
type Store struct {
	db *sql.DB
}

// New 打开（必要时创建）dbPath 处的上传日志库
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload log %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(uploadsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply upload log schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close 关闭数据库
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
