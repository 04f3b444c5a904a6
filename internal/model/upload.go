package model

import "time"

// Upload 上传文件记录（只记录原始文件，不保存任何汇总）
type Upload struct {
	ID           int64     `json:"id"`
	BatchID      string    `json:"batchId"`
	Partition    string    `json:"partition"`
	OriginalName string    `json:"originalName"`
	StoredPath   string    `json:"storedPath"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UploadBatch 一次上传请求的结果
type UploadBatch struct {
	BatchID   string   `json:"batchId"`
	Partition string   `json:"partition"`
	Files     []Upload `json:"files"`
}
