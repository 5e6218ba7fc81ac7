package emojis

import (
	"reflect"
	"testing"
)

func TestIs(t *testing.T) {
	c := New()

	if !c.Is('😀') {
		t.Fatalf("grinning face not classified as emoji")
	}
	if !c.Is('🎉') {
		t.Fatalf("party popper not classified as emoji")
	}
	for _, r := range "abc123,." {
		if c.Is(r) {
			t.Fatalf("%q misclassified as emoji", r)
		}
	}
}

func TestExtract(t *testing.T) {
	c := New()

	got := c.Extract("nice 😀 really 😀🎉 nice")
	want := []string{"😀", "😀", "🎉"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_NoEmoji(t *testing.T) {
	if got := New().Extract("plain text only"); got != nil {
		t.Fatalf("Extract = %v, want nil", got)
	}
}
