package store_test

import (
	"context"
	"testing"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/data/redisStore"
	"github.com/adikol/docvoice/internal/data/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisProgressStore_AppendAndReplay(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	progressStore := store.TestProgressStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	jobID := "job_progress_1"

	messages := []string{
		"Uploaded \"notes.pdf\" to docs-bucket",
		"Extracted text stored as notes.txt in extract-bucket",
		"Document loaded for Q&A (10 characters)",
	}
	for _, m := range messages {
		if err := progressStore.AppendProgress(ctx, jobID, m); err != nil {
			t.Fatalf("AppendProgress failed: %v", err)
		}
	}

	got, err := progressStore.GetProgress(ctx, jobID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if len(got) != len(messages) {
		t.Fatalf("got %d messages, want %d", len(got), len(messages))
	}
	// replay must preserve emit order
	for i := range messages {
		if got[i] != messages[i] {
			t.Errorf("message %d got %q, want %q", i, got[i], messages[i])
		}
	}

	if mr.TTL(jobID) == 0 {
		t.Error("progress list should carry a TTL")
	}
}

func TestRedisProgressStore_EmptyJob(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	progressStore := store.TestProgressStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	got, err := progressStore.GetProgress(ctx, "never-seen")
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no messages, got %v", got)
	}
}
