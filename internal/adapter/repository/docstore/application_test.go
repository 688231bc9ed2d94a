package docstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	domain "loanintake-backend/internal/domain/application"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func openTestDocstore(t *testing.T) (*miniredis.Miniredis, *ApplicationRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	repo := NewApplicationRepository(rdb)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return mr, repo
}

func makeApplication(name, email string) *domain.LoanApplication {
	uri := "file:///docs/" + name + ".pdf"
	return &domain.LoanApplication{
		Name:        name,
		Email:       email,
		Tel:         "0711234567",
		Occupation:  "Clerk",
		Salary:      50000,
		PaysheetURI: &uri,
	}
}

func TestCreate_FirstIDIsOne(t *testing.T) {
	_, repo := openTestDocstore(t)
	ctx := context.Background()

	a := makeApplication("Alice", "a@x.com")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID != 1 {
		t.Fatalf("first id = %d, want 1", a.ID)
	}
	if a.SubmittedAt.IsZero() {
		t.Fatalf("SubmittedAt not set")
	}
	if a.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", a.Status)
	}

	b := makeApplication("Bob", "b@x.com")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID != 2 {
		t.Fatalf("second id = %d, want 2", b.ID)
	}
}

func TestCreate_IDsUniqueUnderConcurrency(t *testing.T) {
	_, repo := openTestDocstore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	ids := make(chan uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := makeApplication("A", "a@x.com")
			if err := repo.Create(ctx, a); err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- a.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint64]struct{}{}
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id assigned: %d", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != n {
		t.Fatalf("got %d records, want %d", len(seen), n)
	}
}

func TestList_MissingKeyIsEmpty(t *testing.T) {
	_, repo := openTestDocstore(t)
	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty, got %d", len(list))
	}
}

func TestList_NewestFirst(t *testing.T) {
	_, repo := openTestDocstore(t)
	ctx := context.Background()

	for _, n := range []string{"Alice", "Bob", "Carol"} {
		if err := repo.Create(ctx, makeApplication(n, n+"@x.com")); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].ID != 3 || list[2].ID != 1 {
		t.Fatalf("not id-descending: %d..%d", list[0].ID, list[2].ID)
	}
}

func TestGetByID_And_NotFound(t *testing.T) {
	_, repo := openTestDocstore(t)
	ctx := context.Background()

	a := makeApplication("Alice", "a@x.com")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Alice" || got.Email != "a@x.com" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_MergeAndImmutableFields(t *testing.T) {
	_, repo := openTestDocstore(t)
	ctx := context.Background()

	a := makeApplication("Alice", "a@x.com")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	submitted := a.SubmittedAt

	salary := 60000.0
	got, err := repo.Update(ctx, a.ID, domain.Patch{Salary: &salary})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Salary != 60000 || got.Name != "Alice" {
		t.Fatalf("merge wrong: %+v", got)
	}
	if got.ID != a.ID || !got.SubmittedAt.Equal(submitted) {
		t.Fatalf("immutable fields changed: id=%d submittedAt=%v", got.ID, got.SubmittedAt)
	}

	name := "X"
	if _, err := repo.Update(ctx, 99, domain.Patch{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByID_IdempotentAndIDNotReusedDownward(t *testing.T) {
	_, repo := openTestDocstore(t)
	ctx := context.Background()

	a := makeApplication("Alice", "a@x.com")
	b := makeApplication("Bob", "b@x.com")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.DeleteByID(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteByID(ctx, b.ID); err != nil {
		t.Fatalf("second delete must be a no-op: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != a.ID {
		t.Fatalf("unexpected list: %+v", list)
	}

	// next id comes from max(live)+1; with only id=1 left, that is 2 again,
	// which stays unique among live records
	c := makeApplication("Carol", "c@x.com")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID != 2 {
		t.Fatalf("id = %d, want 2", c.ID)
	}
}

func TestClearPaysheet_IsolatedAndIdempotent(t *testing.T) {
	_, repo := openTestDocstore(t)
	ctx := context.Background()

	a := makeApplication("Alice", "a@x.com")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, _ := repo.GetByID(ctx, a.ID)

	if err := repo.ClearPaysheet(ctx, a.ID); err != nil {
		t.Fatalf("ClearPaysheet: %v", err)
	}
	after, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.PaysheetURI != nil {
		t.Fatalf("paysheet uri not cleared")
	}
	if after.Name != before.Name || after.Email != before.Email || after.Tel != before.Tel ||
		after.Occupation != before.Occupation || after.Salary != before.Salary ||
		after.Status != before.Status || !after.SubmittedAt.Equal(before.SubmittedAt) {
		t.Fatalf("other fields changed: before=%+v after=%+v", before, after)
	}

	if err := repo.ClearPaysheet(ctx, 999); err != nil {
		t.Fatalf("ClearPaysheet on absent id: %v", err)
	}
}

func TestDeleteAll_RemovesKeyInOneOperation(t *testing.T) {
	mr, repo := openTestDocstore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := repo.Create(ctx, makeApplication("A", "a@x.com")); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if mr.Exists(collectionKey) {
		t.Fatalf("collection key still present after DeleteAll")
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("list not empty after DeleteAll")
	}
}

func TestFindByEmail_CaseInsensitive(t *testing.T) {
	_, repo := openTestDocstore(t)
	ctx := context.Background()

	a := makeApplication("Alice", "Alice@Example.com")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("wrong record: %+v", got)
	}
	if _, err := repo.FindByEmail(ctx, "nobody@x.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
