package minio

import (
	"bytes"
	"context"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"

	"github.com/thriftysouq/go-backend/internal/cfg"
	"github.com/thriftysouq/go-backend/internal/domain"
	"github.com/thriftysouq/go-backend/pkg/e"
)

// AudioRepo реализует репозиторий аудиороликов поверх MinIO.
type AudioRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewAudioRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *AudioRepo {
	return &AudioRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает аудиоролик в MinIO и возвращает ключ объекта.
func (a *AudioRepo) Upload(ctx context.Context, clip *domain.AudioClip) (string, error) {
	reader := bytes.NewReader(clip.Bytes)

	info, err := a.mc.PutObject(ctx, a.cfg.BucketName, clip.ObjectKey, reader, *clip.Size, minio.PutObjectOptions{
		ContentType: *clip.MimeType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (a *AudioRepo) Delete(ctx context.Context, key string) error {
	if err := a.mc.RemoveObject(ctx, a.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
