package repository

import (
	"context"
	"testing"
	"time"

	"techflow_billing/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

func TestRedisKeys(t *testing.T) {
	if recordKey("invoices") != "techflow:record:invoices" {
		t.Fatalf("unexpected record key: %s", recordKey("invoices"))
	}
	if counterKey("invoice_counter") != "techflow:counter:invoice_counter" {
		t.Fatalf("unexpected counter key: %s", counterKey("invoice_counter"))
	}
}

func TestRedisRecordRepository_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	repo := NewRedisRecordRepository(client)
	ctx := context.Background()

	if err := repo.Save(ctx, "invoices", entities.Record{Payload: []byte(`[]`)}); err == nil {
		t.Fatalf("expected save error")
	}
	if _, found, err := repo.Load(ctx, "invoices"); err == nil || found {
		t.Fatalf("expected load error, found=%v err=%v", found, err)
	}
	if _, err := repo.Increment(ctx, "invoice_counter"); err == nil {
		t.Fatalf("expected increment error")
	}
}
