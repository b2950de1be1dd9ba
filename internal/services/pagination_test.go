package services

import "testing"

type row struct{ id uint }

func rowID(r row) uint { return r.id }

func TestBuildCursorPage(t *testing.T) {
	t.Run("full fetch trims the probe row", func(t *testing.T) {
		rows := []row{{9}, {8}, {7}, {6}} // pageSize+1 fetch
		page := buildCursorPage(rows, 3, rowID)
		if len(page.Content) != 3 {
			t.Fatalf("content length = %d, want 3", len(page.Content))
		}
		if !page.HasMore {
			t.Error("probe row present, HasMore should be true")
		}
		if page.NextCursor == nil || *page.NextCursor != 7 {
			t.Errorf("next cursor = %v, want 7 (last returned id)", page.NextCursor)
		}
	})

	t.Run("short fetch is terminal", func(t *testing.T) {
		page := buildCursorPage([]row{{5}, {3}}, 3, rowID)
		if page.HasMore {
			t.Error("short page should not report more")
		}
		if page.NextCursor == nil || *page.NextCursor != 3 {
			t.Errorf("next cursor = %v, want 3", page.NextCursor)
		}
	})

	t.Run("empty fetch", func(t *testing.T) {
		page := buildCursorPage(nil, 3, rowID)
		if page.Content == nil {
			t.Error("content should be an empty slice, not nil")
		}
		if len(page.Content) != 0 || page.HasMore || page.NextCursor != nil {
			t.Errorf("unexpected empty page: %+v", page)
		}
	})
}

func TestClampPageSize(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, defaultPageSize},
		{-5, defaultPageSize},
		{1, 1},
		{25, 25},
	}
	for _, tc := range cases {
		if got := clampPageSize(tc.in); got != tc.want {
			t.Errorf("clampPageSize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
