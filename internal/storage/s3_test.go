package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/config"
)

func TestNewUploader_NilWithoutBucket(t *testing.T) {
	u := NewUploader(&config.Config{})
	require.Nil(t, u)

	_, err := u.Upload(context.Background(), "k", "image/png", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestPublicURL_PrefersConfiguredBase(t *testing.T) {
	u := NewUploader(&config.Config{
		S3Bucket:        "assets",
		S3Region:        "eu-central-1",
		S3PublicBaseURL: "https://cdn.example.com/",
	})
	require.NotNil(t, u)
	require.Equal(t, "https://cdn.example.com/teams/t-1/logo.png", u.PublicURL("teams/t-1/logo.png"))
}

func TestPublicURL_FallsBackToVirtualHostedForm(t *testing.T) {
	u := NewUploader(&config.Config{S3Bucket: "assets", S3Region: "eu-central-1"})
	require.NotNil(t, u)
	require.Equal(t, "https://assets.s3.eu-central-1.amazonaws.com/x/y.png", u.PublicURL("x/y.png"))
}
