package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	if err := LoadFontWithSize(Debug, goregular.TTF, 12); err != nil {
		t.Fatalf("load: %v", err)
	}
	if Debug.Get() == nil {
		t.Fatalf("expected a face")
	}

	if err := LoadFont(DebugSmall, []byte("not a font")); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for an unloaded font")
		}
	}()
	FontName("missing").Get()
}
