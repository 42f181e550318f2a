package assets

import (
	"context"
	"log"

	"museumbackend/internal/pkg/apperr"
)

// Ledger tracks the uploads of one lifecycle operation so they can be
// compensated if a later step fails. It belongs to exactly one operation:
// discarded on success, consumed by Rollback on failure. Never shared
// across requests.
type Ledger struct {
	entries []Object
}

func NewLedger() *Ledger { return &Ledger{} }

func (l *Ledger) record(obj Object) { l.entries = append(l.entries, obj) }

func (l *Ledger) Len() int { return len(l.entries) }

// Coordinator wraps a Store with the compensation protocol. Upload and
// database write are two systems with no shared transaction; the
// coordinator bounds the inconsistency window to "asset written, record
// not yet written" and closes it on every failure path.
type Coordinator struct {
	store Store
}

func NewCoordinator(store Store) *Coordinator {
	return &Coordinator{store: store}
}

// Upload places content and records the result in the ledger. On store
// failure no ledger entry is created and there is nothing to compensate.
func (c *Coordinator) Upload(ctx context.Context, led *Ledger, content []byte, folder, key string) (string, error) {
	obj, err := c.store.Upload(ctx, content, folder, key)
	if err != nil {
		return "", apperr.Wrap(apperr.KindAssetUploadFailed, "asset upload failed", err)
	}
	if led != nil {
		led.record(*obj)
	}
	return obj.URL, nil
}

// Rollback deletes every asset recorded in the ledger. Deletion failures
// are logged and swallowed: the operation that triggered the rollback has
// already failed for another reason and that error must not be masked.
// Rollback still runs when the caller's context is already cancelled.
func (c *Coordinator) Rollback(ctx context.Context, led *Ledger) {
	if led == nil || len(led.entries) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, obj := range led.entries {
		if err := c.store.Delete(ctx, obj.Handle); err != nil {
			log.Printf("asset_rollback_failed handle=%s err=%v", obj.Handle, err)
		}
	}
	led.entries = nil
}

// DeleteByURL removes a previously stored asset by the public URL a
// record carries. Used for replacement, where the new asset is already
// durably referenced, not for rollback.
func (c *Coordinator) DeleteByURL(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	handle, ok := c.store.HandleFromURL(url)
	if !ok {
		return nil
	}
	return c.store.Delete(context.WithoutCancel(ctx), handle)
}
