package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")

	lc := New().Prefix("LOG_")
	if got := lc.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get(LEVEL) = %q, want %q", got, "info")
	}
	if got := lc.Get("FORMAT", "console"); got != "console" {
		t.Fatalf("Get(FORMAT) default = %q, want %q", got, "console")
	}
}

func TestGetBool(t *testing.T) {
	lc := New().Prefix("LOG_")

	tests := []struct {
		name string
		val  string
		def  bool
		want bool
	}{
		{name: "true", val: "true", def: false, want: true},
		{name: "one", val: "1", def: false, want: true},
		{name: "yes upper", val: "YES", def: false, want: true},
		{name: "false", val: "false", def: true, want: false},
		{name: "zero", val: "0", def: true, want: false},
		{name: "padded", val: "  true  ", def: false, want: true},
		{name: "empty keeps default", val: "", def: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_CALLER", tt.val)
			if got := lc.GetBool("CALLER", tt.def); got != tt.want {
				t.Fatalf("GetBool(%q) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	lc := New().Prefix("LOG_")

	tests := []struct {
		name string
		val  string
		def  int
		want int
	}{
		{name: "numeric", val: "42", def: 0, want: 42},
		{name: "padded", val: "  7  ", def: 1, want: 7},
		{name: "non numeric keeps default", val: "12x", def: 9, want: 9},
		{name: "negative keeps default", val: "-5", def: 3, want: 3},
		{name: "empty keeps default", val: "", def: 11, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_SAMPLE_EVERY", tt.val)
			if got := lc.GetInt("SAMPLE_EVERY", tt.def); got != tt.want {
				t.Fatalf("GetInt(%q) = %d, want %d", tt.val, got, tt.want)
			}
		})
	}
}

func TestPrefixComposition(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("CORE_API_LOG_LEVEL", "warn")

	root := New()
	if got := root.Prefix("LOG_").Get("LEVEL", ""); got != "info" {
		t.Fatalf("LOG_ view = %q, want %q", got, "info")
	}
	if got := root.Prefix("CORE_API_").Prefix("LOG_").Get("LEVEL", ""); got != "warn" {
		t.Fatalf("nested view = %q, want %q", got, "warn")
	}
}
