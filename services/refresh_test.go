package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"content-ops-platform/internal/config"
	"content-ops-platform/internal/sheet"
	"content-ops-platform/internal/store"
)

func TestRefreshInstallsSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Title,Text Ready\nPost A,Yes\n"))
	}))
	defer srv.Close()

	cfg := &config.Config{SheetURL: srv.URL + "/edit"}
	contentStore := store.NewContentStore()
	refresher := NewRefreshService(sheet.NewClient(), contentStore, cfg, nil)

	snapshot := refresher.Refresh(context.Background())
	if snapshot.Generation != 1 {
		t.Errorf("Expected generation 1, got %d", snapshot.Generation)
	}
	if len(snapshot.Items) != 1 || snapshot.Items[0].Title != "Post A" {
		t.Errorf("Snapshot items wrong: %+v", snapshot.Items)
	}

	status := refresher.Status()
	if status.Loading {
		t.Errorf("Status must not be loading after the cycle")
	}
	if status.ItemCount != 1 || status.Generation != 1 {
		t.Errorf("Status wrong: %+v", status)
	}
}

func TestRefreshFailSoftOnUnreachableSheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cfg := &config.Config{SheetURL: srv.URL + "/edit"}
	contentStore := store.NewContentStore()
	contentStore.Replace(nil) // generation 1

	refresher := NewRefreshService(sheet.NewClient(), contentStore, cfg, nil)
	snapshot := refresher.Refresh(context.Background())

	// the cycle still completes; the result is just empty
	if snapshot.Generation != 2 {
		t.Errorf("Expected generation 2, got %d", snapshot.Generation)
	}
	if len(snapshot.Items) != 0 {
		t.Errorf("Expected empty snapshot, got %d items", len(snapshot.Items))
	}
}
