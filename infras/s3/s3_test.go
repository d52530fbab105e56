package s3_test

import (
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestS3_GetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hotel-assets"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.APIEndpoint = "https://storage.example.com"

	storage := s3.New(cfg, mocks.NewOtel())

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://cdn.example.com/room/villa.png", want: "villa.png"},
		{name: "api endpoint", url: "https://storage.example.com/hotel-assets/activity/trek.jpg", want: "trek.jpg"},
		{name: "other bucket", url: "https://storage.example.com/other/activity/trek.jpg", want: ""},
		{name: "foreign host", url: "https://images.example.org/villa.png", want: ""},
		{name: "domain only", url: "https://cdn.example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.GetObjectNameFromURL("", tt.url))
		})
	}
}
