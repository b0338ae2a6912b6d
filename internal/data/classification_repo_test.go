package data

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/eucorp/planning/internal/domain/model"
	"github.com/eucorp/planning/internal/testutil"
)

func TestClassificationRepo_CRUD(t *testing.T) {
	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewClassificationRepo(db)

		created, err := repo.Create(ctx, &model.CreateClassificationRequest{Name: "Operational"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected a generated ID")
		}
		if created.Name != "Operational" {
			t.Fatalf("expected name Operational, got %q", created.Name)
		}

		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Name != created.Name {
			t.Fatalf("GetByID returned name %q, want %q", got.Name, created.Name)
		}

		// Duplicate names map to the sentinel.
		if _, err = repo.Create(ctx, &model.CreateClassificationRequest{Name: "Operational"}); !errors.Is(err, ErrClassificationNameExists) {
			t.Fatalf("expected ErrClassificationNameExists, got %v", err)
		}

		updated, err := repo.Update(ctx, created.ID, model.UpdateClassificationRequest{
			Name: testutil.StringPtr("Compliance"),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Name != "Compliance" {
			t.Fatalf("expected updated name Compliance, got %q", updated.Name)
		}

		list, err := repo.List(ctx, 10, 0)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected 1 classification, got %d", len(list))
		}

		ok, err := repo.Delete(ctx, created.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !ok {
			t.Fatal("expected Delete to report a removed row")
		}

		if _, err = repo.GetByID(ctx, created.ID); !errors.Is(err, ErrClassificationNotFound) {
			t.Fatalf("expected ErrClassificationNotFound after delete, got %v", err)
		}
	})
}

func TestClassificationRepo_GetByID_NotFound(t *testing.T) {
	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewClassificationRepo(db)
		_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
		if !errors.Is(err, ErrClassificationNotFound) {
			t.Fatalf("expected ErrClassificationNotFound, got %v", err)
		}
	})
}
