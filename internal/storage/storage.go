package storage

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ObjectScheme marks an avatar stored in the configured bucket, e.g.
// "s3://avatars/cs2023001.png".
const ObjectScheme = "s3://"

// ObjectStorage is the part of an object store the portal needs.
type ObjectStorage interface {
	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

// AvatarResolver turns the avatar value of a profile into something an
// <img> tag can load.
type AvatarResolver struct {
	store   ObjectStorage // nil when object storage is disabled
	expires time.Duration
	log     *zap.Logger
}

func NewAvatarResolver(store ObjectStorage, expires time.Duration, log *zap.Logger) *AvatarResolver {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AvatarResolver{store: store, expires: expires, log: log}
}

// AvatarURL presigns s3:// avatars and passes other URLs through. When there
// is nothing usable it falls back to a generated initials avatar for name.
func (r *AvatarResolver) AvatarURL(ctx context.Context, avatar, name string) string {
	if !strings.HasPrefix(avatar, ObjectScheme) {
		if avatar != "" {
			return avatar
		}
		return InitialsAvatarURL(name)
	}
	if r == nil || r.store == nil {
		return InitialsAvatarURL(name)
	}

	key := strings.TrimPrefix(avatar, ObjectScheme)
	signed, err := r.store.GeneratePresignedDownloadURL(ctx, key, r.expires)
	if err != nil {
		r.log.Warn("presigning avatar failed", zap.String("key", key), zap.Error(err))
		return InitialsAvatarURL(name)
	}
	return signed
}

// InitialsAvatarURL is the ui-avatars image the portal uses by default.
func InitialsAvatarURL(name string) string {
	q := url.Values{}
	q.Set("name", name)
	q.Set("background", "4e73df")
	q.Set("color", "ffffff")
	q.Set("size", "150")
	return "https://ui-avatars.com/api/?" + q.Encode()
}
