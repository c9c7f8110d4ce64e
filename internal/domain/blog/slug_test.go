package blog

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Menuju Fajar, 2024!", "menuju-fajar-2024"},
		{"Hello World", "hello-world"},
		{"  Spaced   Out  Title ", "spaced-out-title"},
		{"Already-Hyphenated---Title", "already-hyphenated-title"},
		{"UPPER case MiXeD", "upper-case-mixed"},
		{"ISBN 978-602", "isbn-978-602"},
		{"!!!???...", ""},
		{"", ""},
		{"---", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Menuju Fajar, 2024!",
		"Hello World",
		"already-a-slug",
		"  Spaced   Out  ",
		"!!!",
	}
	for _, title := range titles {
		once := Slugify(title)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q -> %q", title, once, twice)
		}
	}
}
