// Package objectstore persists generated exercise audio in a MinIO bucket
// and serves it back for playback.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"numbers-dictation-platform/backend/internal/logging"
)

const audioContentType = "audio/mpeg"

// AudioStorage stores synthesized exercise audio and reads it back by
// object key.
type AudioStorage interface {
	// SaveAudio stores the MP3 bytes for an exercise under the dataset
	// version and returns the object key recorded in the manifest.
	SaveAudio(ctx context.Context, data []byte, exerciseID, versionTag string) (string, error)
	// GetAudioReader opens the stored object for streaming. The caller
	// closes the reader.
	GetAudioReader(ctx context.Context, objectKey string) (io.ReadCloser, int64, error)
}

// audioObjectKey builds the bucket path for one exercise recording.
func audioObjectKey(versionTag, exerciseID string) string {
	return fmt.Sprintf("%s/audio/%s.mp3", versionTag, exerciseID)
}

// MinioAudioStorageConfig carries the MinIO connection settings.
type MinioAudioStorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// MinioAudioStorage implements AudioStorage on a MinIO bucket.
type MinioAudioStorage struct {
	client     *minio.Client
	bucketName string
	log        *logging.Logger
}

// NewMinioAudioStorage connects to MinIO and ensures the audio bucket
// exists.
func NewMinioAudioStorage(ctx context.Context, cfg MinioAudioStorageConfig, log *logging.Logger) (*MinioAudioStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.BucketName == "" {
		return nil, fmt.Errorf("minio audio storage: endpoint, access key, secret key and bucket name are required")
	}
	if log == nil {
		log = logging.NewNop()
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if MinIO bucket '%s' exists: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create MinIO bucket '%s': %w", cfg.BucketName, err)
		}
		log.Info("created MinIO bucket", "bucket", cfg.BucketName)
	}

	return &MinioAudioStorage{client: client, bucketName: cfg.BucketName, log: log}, nil
}

// SaveAudio uploads the MP3 bytes under the dataset version prefix.
func (s *MinioAudioStorage) SaveAudio(ctx context.Context, data []byte, exerciseID, versionTag string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("minio audio storage: no audio data for exercise '%s'", exerciseID)
	}
	if exerciseID == "" || versionTag == "" {
		return "", fmt.Errorf("minio audio storage: exercise id and version tag are required")
	}

	objectKey := audioObjectKey(versionTag, exerciseID)
	info, err := s.client.PutObject(ctx, s.bucketName, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: audioContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio to MinIO (bucket: %s, object: %s): %w", s.bucketName, objectKey, err)
	}

	s.log.Debug("uploaded exercise audio", "object", objectKey, "bytes", info.Size)
	return objectKey, nil
}

// GetAudioReader streams a stored recording. The caller closes the reader.
func (s *MinioAudioStorage) GetAudioReader(ctx context.Context, objectKey string) (io.ReadCloser, int64, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get object '%s' from bucket '%s': %w", objectKey, s.bucketName, err)
	}

	stat, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, 0, fmt.Errorf("failed to get object stats for '%s': %w", objectKey, err)
	}

	return object, stat.Size, nil
}

// MemoryAudioStorage is an in-process AudioStorage used in tests and
// local development without a MinIO deployment.
type MemoryAudioStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryAudioStorage returns an empty in-memory store.
func NewMemoryAudioStorage() *MemoryAudioStorage {
	return &MemoryAudioStorage{objects: make(map[string][]byte)}
}

// SaveAudio stores the bytes under the same key scheme the MinIO store
// uses.
func (s *MemoryAudioStorage) SaveAudio(_ context.Context, data []byte, exerciseID, versionTag string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("memory audio storage: no audio data for exercise '%s'", exerciseID)
	}
	if exerciseID == "" || versionTag == "" {
		return "", fmt.Errorf("memory audio storage: exercise id and version tag are required")
	}

	objectKey := audioObjectKey(versionTag, exerciseID)
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.objects[objectKey] = buf
	s.mu.Unlock()
	return objectKey, nil
}

// GetAudioReader returns a reader over the stored bytes.
func (s *MemoryAudioStorage) GetAudioReader(_ context.Context, objectKey string) (io.ReadCloser, int64, error) {
	s.mu.RLock()
	data, ok := s.objects[objectKey]
	s.mu.RUnlock()
	if !ok {
		return nil, 0, fmt.Errorf("memory audio storage: object '%s' not found", objectKey)
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

// Keys lists the stored object keys in sorted order.
func (s *MemoryAudioStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
