package domain

// AudioClip — синтезированный аудиоролик для загрузки в объектное хранилище.
type AudioClip struct {
	ID        string
	Bucket    string
	ObjectKey string
	Bytes     []byte
	Size      *int64
	MimeType  *string
}

func NewAudioClip(id, bucket, objectKey string, data []byte, size *int64, mimeType *string) *AudioClip {
	return &AudioClip{
		ID:        id,
		Bucket:    bucket,
		ObjectKey: objectKey,
		Bytes:     data,
		Size:      size,
		MimeType:  mimeType,
	}
}
