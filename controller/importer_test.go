package controller

import (
	"context"
	"testing"
)

func TestImportSchedule(t *testing.T) {
	tests := map[string]struct {
		text      string
		exAdded   int
		exSkipped int
	}{
		"duplicate and malformed": {
			text:      "1,Eagles,Cowboys\n1,Eagles,Cowboys\nbad-line\n2,Giants,Jets",
			exAdded:   2,
			exSkipped: 1,
		},
		"comments are not counted": {
			text:      "# schedule follows\n1,Eagles,Cowboys\n#2,Giants,Jets",
			exAdded:   1,
			exSkipped: 0,
		},
		"non-numeric week": {
			text:      "one,Eagles,Cowboys\n2,Giants,Jets",
			exAdded:   1,
			exSkipped: 1,
		},
		"extra fields ignored": {
			text:      "1,Eagles,Cowboys,7:30pm,FOX",
			exAdded:   1,
			exSkipped: 0,
		},
		"crlf and blank lines": {
			text:      "1,Eagles,Cowboys\r\n\r\n2,Giants,Jets\r\n",
			exAdded:   2,
			exSkipped: 0,
		},
		"aliases collapse to one matchup": {
			text:      "1,PHI,dallas\n1,eagles,Cowboys",
			exAdded:   1,
			exSkipped: 0,
		},
		"week normalization collides": {
			text:      "1,Eagles,Cowboys\n01,Eagles,Cowboys\n 1 ,Eagles,Cowboys",
			exAdded:   1,
			exSkipped: 0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl, _ := newTestController(t)

			res, err := ctrl.ImportSchedule(context.Background(), "g1", tc.text)
			if err != nil {
				t.Fatalf("error importing: %v", err)
			}
			if res.Added != tc.exAdded || res.Skipped != tc.exSkipped {
				t.Errorf("got added=%d skipped=%d, expected added=%d skipped=%d",
					res.Added, res.Skipped, tc.exAdded, tc.exSkipped)
			}
		})
	}
}

func TestImportSchedulePersists(t *testing.T) {
	ctrl, testDB := newTestController(t)
	ctx := context.Background()

	if _, err := ctrl.ImportSchedule(ctx, "g1", "1,Eagles,Cowboys\n2,Giants,Jets"); err != nil {
		t.Fatalf("error importing: %v", err)
	}

	// The batch is persisted once at the end.
	s, err := testDB.DB.GetSchedule(ctx, "g1")
	if err != nil {
		t.Fatalf("error reading persisted schedule: %v", err)
	}
	if len(s.Games("1")) != 1 || len(s.Games("2")) != 1 {
		t.Errorf("persisted schedule incomplete: %v", s.Weeks)
	}
}
