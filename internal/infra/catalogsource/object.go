package catalogsource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/wvwild/adventure-hub/internal/domain/adventure"
)

// maxCatalogObjectSize bounds how much of the object is read.
const maxCatalogObjectSize = 32 << 20

// ObjectSource reads the catalog document from an S3-compatible bucket, which
// is where the content build publishes it.
type ObjectSource struct {
	client   *minio.Client
	bucket   string
	key      string
	maxBytes int64
	logger   *slog.Logger
}

// NewObjectSource constructs the source and its S3 client.
func NewObjectSource(endpoint, accessKey, secretKey, bucket, key, region string, logger *slog.Logger) (*ObjectSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	useSSL := !strings.HasPrefix(strings.ToLower(endpoint), "http://")
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	return &ObjectSource{
		client:   client,
		bucket:   bucket,
		key:      key,
		maxBytes: maxCatalogObjectSize,
		logger:   logger.With("component", "catalogsource.object"),
	}, nil
}

// Load implements adventure.Source.
func (s *ObjectSource) Load(ctx context.Context) ([]adventure.Adventure, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get catalog object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read catalog object %s/%s: %w", s.bucket, s.key, err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("catalog object %s/%s exceeds %d bytes", s.bucket, s.key, s.maxBytes)
	}
	s.logger.Info("catalog object fetched", "bucket", s.bucket, "key", s.key, "bytes", len(data))
	return Decode(s.key, data)
}

func sanitizeEndpoint(endpoint string) string {
	trimmed := strings.TrimSpace(endpoint)
	trimmed = strings.TrimPrefix(trimmed, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	return strings.TrimSuffix(trimmed, "/")
}

var _ adventure.Source = (*ObjectSource)(nil)
