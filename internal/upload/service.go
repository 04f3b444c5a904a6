package upload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salesboard/internal/model"
)

var (
	// ErrNoFiles 请求中没有文件
	ErrNoFiles = errors.New("no files uploaded")
	// ErrTooManyFiles 超过单次上传上限
	ErrTooManyFiles = errors.New("too many files")
	// ErrInvalidPartition 未知的 fileType
	ErrInvalidPartition = errors.New("invalid fileType")
)

// maxNameAttempts 同名文件加序号的最大尝试次数
const maxNameAttempts = 1000

// Recorder 上传日志写入；一批记录要么全部写入，要么都不写入
type Recorder interface {
	InsertUploads(uploads []model.Upload) ([]int64, error)
}

// Service 将上传文件保存到分区目录
type Service struct {
	partitions map[string]string
	maxFiles   int
	recorder   Recorder
	logger     *zap.Logger
	now        func() time.Time
}

// NewService 创建上传服务；recorder 可为 nil（不记录日志）
func NewService(partitions map[string]string, maxFiles int, recorder Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		partitions: partitions,
		maxFiles:   maxFiles,
		recorder:   recorder,
		logger:     logger,
		now:        time.Now,
	}
}

// AllowedPartitions 已配置的分区名（排序）
func (s *Service) AllowedPartitions() []string {
	names := make([]string, 0, len(s.partitions))
	for name := range s.partitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StoredName 保存文件名：<毫秒时间戳>-<原始文件名>
func StoredName(now time.Time, original string) string {
	return storedName(now, original, 0)
}

// storedName 第 n 次尝试的文件名，n>0 时在扩展名前追加 -n
func storedName(now time.Time, original string, n int) string {
	base := filepath.Base(original)
	if n > 0 {
		ext := filepath.Ext(base)
		base = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), n, ext)
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}

// Save 保存一批文件到 partition 对应目录（目录不存在时创建）。
// 任一文件保存或记录失败时，本批已写入的文件全部删除。
func (s *Service) Save(partition string, files []*multipart.FileHeader) (*model.UploadBatch, error) {
	dir, ok := s.partitions[partition]
	if !ok {
		return nil, fmt.Errorf("%w. Allowed: %s", ErrInvalidPartition, strings.Join(s.AllowedPartitions(), ", "))
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > s.maxFiles {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyFiles, len(files), s.maxFiles)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create partition directory: %w", err)
	}

	now := s.now()
	batch := &model.UploadBatch{
		BatchID:   uuid.NewString(),
		Partition: partition,
		Files:     make([]model.Upload, 0, len(files)),
	}

	rollback := func() {
		for _, u := range batch.Files {
			if err := os.Remove(u.StoredPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
				s.logger.Warn("failed to remove file after aborted upload",
					zap.String("batch", batch.BatchID),
					zap.String("path", u.StoredPath),
					zap.Error(err),
				)
			}
		}
	}

	for _, fh := range files {
		dst, size, err := saveFile(fh, dir, now)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("failed to save %s: %w", fh.Filename, err)
		}
		batch.Files = append(batch.Files, model.Upload{
			BatchID:      batch.BatchID,
			Partition:    partition,
			OriginalName: fh.Filename,
			StoredPath:   dst,
			Size:         size,
			CreatedAt:    now,
		})
	}

	if s.recorder != nil {
		ids, err := s.recorder.InsertUploads(batch.Files)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("failed to record upload batch: %w", err)
		}
		for i := range batch.Files {
			batch.Files[i].ID = ids[i]
		}
	}

	for _, u := range batch.Files {
		s.logger.Info("file uploaded",
			zap.String("batch", batch.BatchID),
			zap.String("partition", partition),
			zap.String("path", u.StoredPath),
			zap.Int64("size", u.Size),
		)
	}
	return batch, nil
}

// saveFile 以独占方式创建目标文件，已存在时改用带序号的文件名
func saveFile(fh *multipart.FileHeader, dir string, now time.Time) (string, int64, error) {
	for n := 0; n < maxNameAttempts; n++ {
		dst := filepath.Join(dir, storedName(now, fh.Filename, n))
		out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", 0, err
		}

		size, err := copyUpload(fh, out)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
			return "", 0, err
		}
		return dst, size, nil
	}
	return "", 0, fmt.Errorf("no free file name for %s", fh.Filename)
}

func copyUpload(fh *multipart.FileHeader, out io.Writer) (int64, error) {
	src, err := fh.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	return io.Copy(out, src)
}
