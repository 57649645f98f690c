package images

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/retry"
)

// Placeholder is served whenever an image cannot be resolved. Missing
// images are a UI state, not an error.
const Placeholder = "data:image/svg+xml;utf8," +
	"%3Csvg%20xmlns='http://www.w3.org/2000/svg'%20viewBox='0%200%20600%20450'%3E" +
	"%3Crect%20width='100%25'%20height='100%25'%20fill='%23f3f4f6'/%3E" +
	"%3Cg%20fill='%239ca3af'%3E%3Ccircle%20cx='200'%20cy='180'%20r='24'/%3E" +
	"%3Ccircle%20cx='260'%20cy='150'%20r='18'/%3E%3Ccircle%20cx='300'%20cy='180'%20r='22'/%3E" +
	"%3Ccircle%20cx='240'%20cy='210'%20r='20'/%3E" +
	"%3Cpath%20d='M310%20240c-40%200-70%2030-70%2060h140c0-30-30-60-70-60z'/%3E%3C/g%3E%3C/svg%3E"

var (
	errNoImages   = errors.New("product has no images yet")
	errEmptyImage = errors.New("image payload is empty")
)

// Resolver discovers and fetches product images from a backend that is
// eventually consistent: an image uploaded alongside a product may not
// be listed until processing finishes. Both stages retry under the same
// bounded policy. A newer resolution for the same product supersedes an
// older in-flight one; the stale result is discarded, never cached.
type Resolver struct {
	client *backend.Client
	policy retry.Policy

	mu       sync.Mutex
	cache    map[uint]string
	inflight map[uint]context.CancelFunc
	gen      map[uint]uint64
}

func NewResolver(client *backend.Client, policy retry.Policy) *Resolver {
	return &Resolver{
		client:   client,
		policy:   policy,
		cache:    make(map[uint]string),
		inflight: make(map[uint]context.CancelFunc),
		gen:      make(map[uint]uint64),
	}
}

// Cached returns the already-resolved URI for a product, if any. Used
// by callers that must not block on a resolution (cart inserts).
func (r *Resolver) Cached(productID uint) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	src, ok := r.cache[productID]
	return src, ok
}

// Invalidate drops a cached entry, e.g. after new images are uploaded.
func (r *Resolver) Invalidate(productID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, productID)
}

// Resolve returns a data URI for the product's first image, or the
// placeholder once every attempt is exhausted. When knownIDs is
// non-empty the discovery stage is skipped entirely.
func (r *Resolver) Resolve(ctx context.Context, token string, productID uint, knownIDs []uint) string {
	r.mu.Lock()
	if src, ok := r.cache[productID]; ok {
		r.mu.Unlock()
		return src
	}
	if cancel, ok := r.inflight[productID]; ok {
		cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.gen[productID]++
	gen := r.gen[productID]
	r.inflight[productID] = cancel
	r.mu.Unlock()
	defer cancel()

	src := r.resolve(ctx, token, productID, knownIDs)

	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx.Err() != nil || r.gen[productID] != gen {
		// Superseded or abandoned mid-flight; no state commit.
		return Placeholder
	}
	delete(r.inflight, productID)
	if src == "" {
		return Placeholder
	}
	r.cache[productID] = src
	return src
}

func (r *Resolver) resolve(ctx context.Context, token string, productID uint, knownIDs []uint) string {
	var imageID uint
	if len(knownIDs) > 0 {
		imageID = knownIDs[0]
	} else {
		err := retry.Do(ctx, r.policy, func() error {
			ids, err := r.client.ListImageIDs(ctx, token, productID)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return errNoImages
			}
			imageID = ids[0]
			return nil
		})
		if err != nil {
			return ""
		}
	}

	var encoded string
	err := retry.Do(ctx, r.policy, func() error {
		file, err := r.client.FetchImage(ctx, token, imageID)
		if err != nil {
			return err
		}
		if file == "" {
			return errEmptyImage
		}
		encoded = file
		return nil
	})
	if err != nil {
		return ""
	}
	return DataURI(encoded)
}

// DetectMime sniffs the leading base64 bytes against the known image
// signatures, defaulting to JPEG.
func DetectMime(b64 string) string {
	switch {
	case strings.HasPrefix(b64, "iVBORw0K"):
		return "image/png"
	case strings.HasPrefix(b64, "/9j/"):
		return "image/jpeg"
	case strings.HasPrefix(b64, "R0lGOD"):
		return "image/gif"
	case strings.HasPrefix(b64, "UklGR"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// DataURI turns an encoded payload into a displayable source. Payloads
// that already are fully-qualified data URIs pass through untouched.
func DataURI(encoded string) string {
	if strings.HasPrefix(encoded, "data:") {
		return encoded
	}
	return "data:" + DetectMime(encoded) + ";base64," + encoded
}
