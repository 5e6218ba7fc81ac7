package links

import "testing"

func TestFind(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"no links", "just words here", 0},
		{"one http link", "see https://example.com/page now", 1},
		{"schemeless", "try example.com sometime", 1},
		{"two links", "http://a.example and www.b.example", 2},
		{"empty", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Find(tc.in)
			if len(got) != tc.want {
				t.Fatalf("Find(%q) = %v, want %d spans", tc.in, got, tc.want)
			}
		})
	}
}

func TestStrictIgnoresSchemeless(t *testing.T) {
	d := NewStrict()
	if got := d.Find("try example.com sometime"); len(got) != 0 {
		t.Fatalf("strict Find = %v, want none", got)
	}
	if got := d.Find("see https://example.com"); len(got) != 1 {
		t.Fatalf("strict Find = %v, want one span", got)
	}
}
