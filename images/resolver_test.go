package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/retry"
)

// fastPolicy keeps the tests quick; the backoff shape is covered by the
// retry package's own tests.
var fastPolicy = retry.Policy{MaxAttempts: 3, Base: time.Millisecond, Step: time.Millisecond}

const pngPayload = "iVBORw0KGgoAAAANSUhEUg"

type fakeImageBackend struct {
	srv        *httptest.Server
	listCalls  atomic.Int64
	fetchCalls atomic.Int64

	// listAfter holds how many list calls return empty before the id
	// shows up, simulating an image that is still processing.
	listAfter int64
	ids       string
	file      string
}

func newFakeImageBackend(t *testing.T, listAfter int64, ids, file string) *fakeImageBackend {
	t.Helper()
	f := &fakeImageBackend{listAfter: listAfter, ids: ids, file: file}
	mux := http.NewServeMux()
	mux.HandleFunc("/products/images/", func(w http.ResponseWriter, r *http.Request) {
		if f.listCalls.Add(1) <= f.listAfter {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(f.ids))
	})
	mux.HandleFunc("/products/images", func(w http.ResponseWriter, r *http.Request) {
		f.fetchCalls.Add(1)
		w.Write([]byte(`{"file":"` + f.file + `"}`))
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeImageBackend) resolver() *Resolver {
	return NewResolver(backend.NewClient(f.srv.URL), fastPolicy)
}

func TestResolveSkipsDiscoveryWithKnownIDs(t *testing.T) {
	f := newFakeImageBackend(t, 0, `[7]`, pngPayload)
	r := f.resolver()

	src := r.Resolve(context.Background(), "", 1, []uint{7})

	assert.Equal(t, "data:image/png;base64,"+pngPayload, src)
	assert.Zero(t, f.listCalls.Load())
	assert.Equal(t, int64(1), f.fetchCalls.Load())
}

func TestResolveRetriesUntilImageAppears(t *testing.T) {
	f := newFakeImageBackend(t, 2, `[7]`, pngPayload)
	r := f.resolver()

	src := r.Resolve(context.Background(), "", 1, nil)

	assert.Equal(t, "data:image/png;base64,"+pngPayload, src)
	assert.Equal(t, int64(3), f.listCalls.Load())
}

func TestResolvePlaceholderOnExhaustion(t *testing.T) {
	f := newFakeImageBackend(t, 100, `[]`, "")
	r := f.resolver()

	src := r.Resolve(context.Background(), "", 1, nil)

	assert.Equal(t, Placeholder, src)
	assert.Equal(t, int64(3), f.listCalls.Load())

	// Placeholders are never cached; the next call tries again.
	_, ok := r.Cached(1)
	assert.False(t, ok)
}

func TestResolveCachesAndInvalidates(t *testing.T) {
	f := newFakeImageBackend(t, 0, `[7]`, pngPayload)
	r := f.resolver()

	first := r.Resolve(context.Background(), "", 1, nil)
	second := r.Resolve(context.Background(), "", 1, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), f.listCalls.Load())
	assert.Equal(t, int64(1), f.fetchCalls.Load())

	cached, ok := r.Cached(1)
	assert.True(t, ok)
	assert.Equal(t, first, cached)

	r.Invalidate(1)
	_, ok = r.Cached(1)
	assert.False(t, ok)

	r.Resolve(context.Background(), "", 1, nil)
	assert.Equal(t, int64(2), f.listCalls.Load())
}

func TestResolveCancelledContextCommitsNothing(t *testing.T) {
	f := newFakeImageBackend(t, 0, `[7]`, pngPayload)
	r := f.resolver()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := r.Resolve(ctx, "", 1, nil)

	assert.Equal(t, Placeholder, src)
	_, ok := r.Cached(1)
	assert.False(t, ok)
}

func TestResolveFirstListedIDWins(t *testing.T) {
	f := newFakeImageBackend(t, 0, `[9,3,5]`, pngPayload)
	r := f.resolver()

	src := r.Resolve(context.Background(), "", 1, nil)

	assert.NotEqual(t, Placeholder, src)
	assert.Equal(t, int64(1), f.fetchCalls.Load())
}

func TestDetectMime(t *testing.T) {
	assert.Equal(t, "image/png", DetectMime("iVBORw0Kabc"))
	assert.Equal(t, "image/jpeg", DetectMime("/9j/abc"))
	assert.Equal(t, "image/gif", DetectMime("R0lGODabc"))
	assert.Equal(t, "image/webp", DetectMime("UklGRabc"))
	assert.Equal(t, "image/jpeg", DetectMime("unknown"))
}

func TestDataURIPassthrough(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,abc", DataURI("data:image/png;base64,abc"))
	assert.Equal(t, "data:image/jpeg;base64,/9j/abc", DataURI("/9j/abc"))
}
