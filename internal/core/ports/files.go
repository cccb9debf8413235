package ports

import (
	"context"
	"io"
)

// FileStorage определяет интерфейс для работы с файловым хранилищем (AWS S3, MinIO)
type FileStorage interface {
	// UploadFile загружает файл и возвращает его публичный URL
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}
