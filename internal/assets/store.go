// Package assets owns the external asset storage boundary and the
// compensation protocol around it: every upload that precedes a database
// write goes through the Coordinator so that a failed write can delete
// the asset it would have referenced.
package assets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Object is a stored asset: the public URL recorded on entity rows and
// the provider handle needed to delete the object later.
type Object struct {
	URL    string
	Handle string
}

// Store is the durable object storage collaborator. URL construction must
// be invertible so assets can be deleted by the URL a record carries.
type Store interface {
	Upload(ctx context.Context, content []byte, folder, key string) (*Object, error)
	Delete(ctx context.Context, handle string) error
	// HandleFromURL inverts the store's URL scheme. ok is false when the
	// URL was not produced by this store.
	HandleFromURL(url string) (handle string, ok bool)
}

var (
	ErrEmptyContent    = errors.New("asset content is empty")
	ErrUnsupportedType = errors.New("asset type is not allowed")
)

// Key builds a storage key from entity-identifying parts, lower-cased,
// plus a request-unique token so concurrent operations never collide.
func Key(parts ...string) string {
	prefix := strings.ToLower(strings.Join(parts, "_"))
	prefix = strings.ReplaceAll(prefix, " ", "_")
	return prefix + "_" + uuid.NewString()[:8]
}
