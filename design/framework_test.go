package design

import "testing"

func TestFrameworkRoundTrip(t *testing.T) {
	for _, fw := range []Framework{FrameworkNone, FrameworkBootstrap, FrameworkTailwind} {
		back, err := ParseFramework(fw.String())
		if err != nil {
			t.Errorf("ParseFramework(%q) error: %v", fw.String(), err)
			continue
		}
		if back != fw {
			t.Errorf("ParseFramework(%q) = %v, want %v", fw.String(), back, fw)
		}
	}

	if fw, err := ParseFramework(""); err != nil || fw != FrameworkNone {
		t.Errorf("ParseFramework(\"\") = %v, %v", fw, err)
	}
	if _, err := ParseFramework("bulma"); err == nil {
		t.Error("ParseFramework(bulma) expected error")
	}
}
