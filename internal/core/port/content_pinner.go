package port

import "context"

// ContentPinner is the outbound port to the content-addressed storage
// network. A successful pin returns the content address the ledger record
// will reference. Pins are not deduplicated by content hash: re-pinning the
// same bytes after a failed submit yields a fresh address and may leave the
// earlier pin orphaned.
type ContentPinner interface {
	PinFile(ctx context.Context, name string, data []byte) (string, error)
}
