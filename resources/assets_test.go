package resources

import "testing"

func TestIcon_Cached(t *testing.T) {
	first, err := Icon("kettle.svg")
	if err != nil {
		t.Fatalf("Icon() err=%v, want nil", err)
	}
	second := MustIcon("kettle.svg")
	if first != second {
		t.Fatalf("Icon() returned a new resource on second call")
	}
	if len(first.Content()) == 0 {
		t.Fatalf("icon content empty")
	}
}

func TestIcon_Missing(t *testing.T) {
	if _, err := Icon("nope.svg"); err == nil {
		t.Fatalf("Icon(missing) err=nil, want error")
	}
}

func TestSound_Chime(t *testing.T) {
	data, err := Sound("chime.wav")
	if err != nil {
		t.Fatalf("Sound() err=%v, want nil", err)
	}
	if len(data) < 44 || string(data[:4]) != "RIFF" {
		t.Fatalf("chime.wav is not a RIFF file")
	}
}
