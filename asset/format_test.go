package asset

import "testing"

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"story", "square"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", s, err)
		}
		if string(f) != s {
			t.Fatalf("ParseFormat(%q) = %q", s, f)
		}
	}
	if _, err := ParseFormat("poster"); err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestProfileOfTotal(t *testing.T) {
	if got := ProfileOf("banner"); got != profiles[Square] {
		t.Fatalf("unknown format did not fall back to square: %+v", got)
	}
	if ProfileOf(Story).Height != 1920 {
		t.Fatal("story profile height changed")
	}
}

func TestProfilesFitTheirCanvas(t *testing.T) {
	for f, p := range profiles {
		if p.ContentWidth() <= 0 {
			t.Fatalf("%s: no printable width", f)
		}
		if p.ContentBoxTop+p.ContentBoxHeight > p.Height {
			t.Fatalf("%s: content box leaves the canvas", f)
		}
		if p.ContentBoxHeight < p.LineHeight {
			t.Fatalf("%s: content box cannot hold one line", f)
		}
	}
}

func TestRequestValidate(t *testing.T) {
	if err := (Request{Content: "x"}).Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := (Request{Title: "only a title"}).Validate(); err == nil {
		t.Fatal("empty content accepted")
	}
}
