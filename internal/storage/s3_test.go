package storage

import (
	"context"
	"net/url"
	"nutrisync/nutrisync-app/internal/config"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "", endpointURL("", true))
	assert.Equal(t, "https://minio:9000", endpointURL("minio:9000", true))
	assert.Equal(t, "http://minio:9000", endpointURL("minio:9000", false))
	assert.Equal(t, "http://localhost:9000", endpointURL("http://localhost:9000", true))
}

func TestPresignedUploadURL_PathStyle(t *testing.T) {
	fs, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test-secret",
		BucketName:      "photos",
		UseSSL:          false,
	})
	require.NoError(t, err)

	raw, err := fs.GeneratePresignedUploadURL(context.Background(), "photos/u1/l1/p.jpg", "image/jpeg", 5*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/photos/photos/u1/l1/p.jpg"), u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
}
