package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-query-service/internal/store"
	"github.com/preston-bernstein/nhl-query-service/internal/testutil"
)

func purgeRequest(auth string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/cache/purge", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return req
}

func TestAdminPurgeRequiresAuth(t *testing.T) {
	cache := store.NewMemoryStore(nil)
	cache.Set("k", []byte("v"), time.Minute)
	h := NewAdminHandler(cache, "secret", nil)

	for _, auth := range []string{"", "Bearer wrong", "secret", "Basic secret"} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.PurgeCache), purgeRequest(auth))
		testutil.AssertError(t, rr, http.StatusUnauthorized, "unauthorized")
	}
	if cache.Len() != 1 {
		t.Fatalf("expected cache untouched by unauthorized calls")
	}
}

func TestAdminPurgeWithoutTokenAlwaysRejects(t *testing.T) {
	h := NewAdminHandler(store.NewMemoryStore(nil), "", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.PurgeCache), purgeRequest("Bearer "))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminPurgeDropsEntries(t *testing.T) {
	cache := store.NewMemoryStore(nil)
	cache.Set("a", []byte("1"), time.Minute)
	cache.Set("b", []byte("2"), time.Minute)
	h := NewAdminHandler(cache, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.PurgeCache), purgeRequest("Bearer secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp PurgeResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Purged != 2 || cache.Len() != 0 {
		t.Fatalf("expected 2 purged and empty cache, got %+v len=%d", resp, cache.Len())
	}
}

func TestAdminPurgeWithoutCache(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.PurgeCache), purgeRequest("Bearer secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
