package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"

	"gamevault/internal/config"
	"gamevault/internal/ids"
	"gamevault/internal/media/sniffer"
	"gamevault/internal/storage"
)

// UploadKind selects the destination bucket.
type UploadKind string

const (
	UploadKindCover  UploadKind = "cover"
	UploadKindAvatar UploadKind = "avatar"
)

type UploadInput struct {
	UserID string
	Kind   UploadKind
	File   multipart.File
	Header *multipart.FileHeader
}

type UploadResult struct {
	Key  string
	URL  string
	MIME string
	Size int64
}

type UploadService struct {
	store *storage.ObjectStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewUploadService(store *storage.ObjectStore, cfg *config.AppConfig, log zerolog.Logger) *UploadService {
	return &UploadService{
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

// Upload stores a cover or avatar image. The payload is sniffed and
// must be a raster image whose actual type matches the declared
// Content-Type, if one was sent.
func (s *UploadService) Upload(ctx context.Context, input UploadInput) (UploadResult, error) {
	if input.File == nil || input.Header == nil {
		return UploadResult{}, validationError("file is required")
	}

	var bucket string
	switch input.Kind {
	case UploadKindCover:
		bucket = s.cfg.Storage.BucketCovers
	case UploadKindAvatar:
		bucket = s.cfg.Storage.BucketAvatars
	default:
		return UploadResult{}, validationError("unknown upload kind")
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return UploadResult{}, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return UploadResult{}, validationError("empty file")
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	result, err := sniffer.DetectHead(head)
	if err != nil {
		if errors.Is(err, sniffer.ErrUnknownType) {
			return UploadResult{}, validationError("unsupported image type")
		}
		return UploadResult{}, fmt.Errorf("detect type: %w", err)
	}

	declared := sniffer.MimeTypeFromHTTP(http.Header(input.Header.Header))
	if declared != "" && declared != result.MIME {
		return UploadResult{}, validationError(
			fmt.Sprintf("content type mismatch: declared %s, actual %s", declared, result.MIME))
	}

	key := fmt.Sprintf("%s/%s.%s", input.UserID, ids.New(), result.Type)
	_, err = s.store.Client().PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: result.MIME,
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("store object: %w", err)
	}

	return UploadResult{
		Key:  key,
		URL:  s.store.PublicURL(bucket, key),
		MIME: result.MIME,
		Size: int64(len(data)),
	}, nil
}
