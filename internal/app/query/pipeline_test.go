package query

import (
	"context"
	"errors"
	"testing"

	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

type row struct {
	name string
	rank int
	seq  int
}

func testDef() Definition[row] {
	return Definition[row]{
		SearchFields: func(r row) []string { return []string{r.name} },
		Less: map[string]LessFunc[row]{
			"name": func(a, b row) bool { return a.name < b.name },
			"rank": func(a, b row) bool { return a.rank < b.rank },
		},
		DefaultLess: func(a, b row) bool { return a.name < b.name },
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"valid", Spec{Skip: 0, Take: 10}, false},
		{"max take", Spec{Take: 1000}, false},
		{"negative skip", Spec{Skip: -1, Take: 10}, true},
		{"zero take", Spec{Take: 0}, true},
		{"take too large", Spec{Take: 1001}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr && !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("got %v, want ErrValidationFailed", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRunSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := []row{{name: "Databases"}, {name: "Algorithms"}, {name: "Data Science"}}

	res, err := Run(context.Background(), items, Spec{SearchTerm: "dAtA", Take: 10}, testDef())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.TotalCount != 2 || len(res.Items) != 2 {
		t.Fatalf("got total=%d len=%d, want 2/2", res.TotalCount, len(res.Items))
	}
	for _, r := range res.Items {
		if r.name != "Databases" && r.name != "Data Science" {
			t.Errorf("unexpected match %q", r.name)
		}
	}
}

func TestRunTotalCountIsPrePagination(t *testing.T) {
	items := make([]row, 9)
	for i := range items {
		items[i] = row{name: "x", rank: i}
	}

	res, err := Run(context.Background(), items, Spec{Skip: 3, Take: 2, OrderBy: "rank"}, testDef())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.TotalCount != 9 {
		t.Errorf("TotalCount = %d, want 9 (count before the window)", res.TotalCount)
	}
	if len(res.Items) != 2 || res.Items[0].rank != 3 || res.Items[1].rank != 4 {
		t.Errorf("window wrong: %+v", res.Items)
	}
}

func TestRunUnknownOrderByFallsBackToDefault(t *testing.T) {
	items := []row{{name: "b"}, {name: "a"}, {name: "c"}}

	res, err := Run(context.Background(), items, Spec{OrderBy: "nonsense", Take: 10}, testDef())
	if err != nil {
		t.Fatalf("unknown orderBy must not fail: %v", err)
	}
	if res.Items[0].name != "a" || res.Items[1].name != "b" || res.Items[2].name != "c" {
		t.Errorf("fallback ordering wrong: %+v", res.Items)
	}
}

func TestRunOrderByIsCaseInsensitive(t *testing.T) {
	items := []row{{rank: 2}, {rank: 1}, {rank: 3}}

	res, err := Run(context.Background(), items, Spec{OrderBy: "Rank", Take: 10}, testDef())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Items[0].rank != 1 || res.Items[2].rank != 3 {
		t.Errorf("orderBy=Rank not applied: %+v", res.Items)
	}
}

func TestRunDescendingSwapsDirection(t *testing.T) {
	items := []row{{rank: 2}, {rank: 1}, {rank: 3}}

	res, err := Run(context.Background(), items,
		Spec{OrderBy: "rank", OrderDescending: true, Take: 10}, testDef())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Items[0].rank != 3 || res.Items[2].rank != 1 {
		t.Errorf("descending ordering wrong: %+v", res.Items)
	}
}

func TestRunSortIsStable(t *testing.T) {
	items := []row{
		{name: "same", seq: 0},
		{name: "same", seq: 1},
		{name: "same", seq: 2},
	}

	res, err := Run(context.Background(), items, Spec{OrderBy: "name", Take: 10}, testDef())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for i, r := range res.Items {
		if r.seq != i {
			t.Errorf("ties reordered: pos %d has seq %d", i, r.seq)
		}
	}
}

func TestRunOvershootReturnsShortOrEmptyPage(t *testing.T) {
	items := []row{{name: "a"}, {name: "b"}, {name: "c"}}

	res, err := Run(context.Background(), items, Spec{Skip: 2, Take: 10}, testDef())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Items) != 1 || res.TotalCount != 3 {
		t.Errorf("short page: got len=%d total=%d, want 1/3", len(res.Items), res.TotalCount)
	}

	res, err = Run(context.Background(), items, Spec{Skip: 100, Take: 10}, testDef())
	if err != nil {
		t.Fatalf("overshoot must not fail: %v", err)
	}
	if len(res.Items) != 0 || res.TotalCount != 3 {
		t.Errorf("empty page: got len=%d total=%d, want 0/3", len(res.Items), res.TotalCount)
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	items := []row{{name: "c"}, {name: "a"}, {name: "b"}}

	if _, err := Run(context.Background(), items, Spec{OrderBy: "name", Take: 10}, testDef()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if items[0].name != "c" || items[1].name != "a" || items[2].name != "b" {
		t.Errorf("input slice reordered: %+v", items)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []row{{name: "a"}}, Spec{Take: 10}, testDef())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
