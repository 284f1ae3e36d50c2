package r2

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClient_IncompleteConfig(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{AccountID: "acc", BucketName: "media"})
	require.Error(t, err)
}

func TestClientURL(t *testing.T) {
	c, err := NewClient(context.Background(), &Config{
		AccountID:       "acc",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "media",
		PublicURL:       "https://cdn.naotica.studio/",
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.naotica.studio/images/2024/06/a.png", c.URL("images/2024/06/a.png"))

	c.publicURL = ""
	require.Equal(t, "https://media.r2.dev/images/a.png", c.URL("images/a.png"))
}
