package engine

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"user-limits", "UserLimits"},
		{"user_limits", "UserLimits"},
		{"userLimits", "UserLimits"},
		{"user limits", "UserLimits"},
		{"UserLimits", "UserLimits"},
		{"tasks", "Tasks"},
		{"habit-entries", "HabitEntries"},
		{"--weird__input  ", "WeirdInput"},
		{"a", "A"},
		{"a-b", "AB"},
		{"AB", "AB"},
		{"ABc", "Abc"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	t.Parallel()
	// Single-letter words collapse into consecutive capitals that a second
	// pass cannot re-split, so those degenerate shapes must be fixpoints too.
	inputs := []string{
		"user-limits", "habit_entries", "alreadyCamel", "Mixed-case_input", "", "x",
		"a-b", "--a--b__c dD", "AB", "A B C",
	}
	for _, in := range inputs {
		once := Format(in)
		if twice := Format(once); twice != once {
			t.Errorf("Format not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestDashed(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"HabitEntries", "habit-entries"},
		{"Habit Entries", "habit-entries"},
		{"tasks", "tasks"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := dashed(tc.in); got != tc.want {
			t.Errorf("dashed(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSingular(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"Tasks", "Task"},
		{"Entries", "Entry"},
		{"Access", "Access"},
		{"Authentication", "Authentication"},
		{"Habits", "Habit"},
	}
	for _, tc := range cases {
		if got := singular(tc.in); got != tc.want {
			t.Errorf("singular(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
