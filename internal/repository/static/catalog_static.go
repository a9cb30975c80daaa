package static

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

//go:embed databases/db.json
var embeddedCatalog embed.FS

const embeddedCatalogPath = "databases/db.json"

// FileCatalog reads the catalog document from disk, or from the copy bundled
// into the binary when path is empty.
type FileCatalog struct {
	path string
}

func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{path: strings.TrimSpace(path)}
}

func (c *FileCatalog) Name() string {
	if c.path == "" {
		return "embedded:" + embeddedCatalogPath
	}
	return "file:" + c.path
}

func (c *FileCatalog) Fetch(ctx context.Context) ([]domain.Destination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		data []byte
		err  error
	)
	if c.path == "" {
		data, err = embeddedCatalog.ReadFile(embeddedCatalogPath)
	} else {
		data, err = os.ReadFile(c.path)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", c.Name(), err)
	}
	return decodeCatalog(data)
}

// ObjectCatalog reads the catalog document from object storage.
type ObjectCatalog struct {
	storage ports.ObjectStorage
	bucket  string
	object  string
}

func NewObjectCatalog(storage ports.ObjectStorage, bucket, object string) *ObjectCatalog {
	return &ObjectCatalog{storage: storage, bucket: bucket, object: object}
}

func (c *ObjectCatalog) Name() string {
	return "minio:" + c.bucket + "/" + c.object
}

func (c *ObjectCatalog) Fetch(ctx context.Context) ([]domain.Destination, error) {
	rc, err := c.storage.Download(ctx, c.bucket, c.object)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", c.Name(), err)
	}
	return decodeCatalog(data)
}

func decodeCatalog(data []byte) ([]domain.Destination, error) {
	var destinations []domain.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if destinations == nil {
		destinations = []domain.Destination{}
	}
	return destinations, nil
}

// NewSource builds a catalog source from its configuration string:
// "embedded", "file:<path>", "http(s)://...", or "minio:<bucket>/<object>".
func NewSource(spec string, storage ports.ObjectStorage) (ports.CatalogSource, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "" || spec == "embedded":
		return NewFileCatalog(""), nil
	case strings.HasPrefix(spec, "file:"):
		path := strings.TrimPrefix(spec, "file:")
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("catalog: empty file path")
		}
		return NewFileCatalog(path), nil
	case strings.HasPrefix(spec, "http://"), strings.HasPrefix(spec, "https://"):
		return NewHTTPCatalog(spec, nil), nil
	case strings.HasPrefix(spec, "minio:"):
		if storage == nil {
			return nil, fmt.Errorf("catalog: %s requires object storage", spec)
		}
		bucket, object, ok := strings.Cut(strings.TrimPrefix(spec, "minio:"), "/")
		if !ok || bucket == "" || object == "" {
			return nil, fmt.Errorf("catalog: invalid object location %q", spec)
		}
		return NewObjectCatalog(storage, bucket, object), nil
	default:
		return nil, fmt.Errorf("catalog: unsupported source %q", spec)
	}
}
