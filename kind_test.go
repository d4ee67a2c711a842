package uptable

import (
	"image/color"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		category string
		want     Kind
	}{
		{"Cn", KindSkip},
		{"Cs", KindSkip},
		{"Cc", KindControl},
		{"Cf", KindControl},
		{"Zs", KindSpace},
		{"Co", KindPrivateUse},
		{"Lu", KindGraphic},
		{"Mn", KindGraphic},
		{"Zl", KindGraphic},
		{"Zp", KindGraphic},
		{"So", KindGraphic},
	}

	for _, tt := range tests {
		if got := Classify(tt.category); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestPlanFor(t *testing.T) {
	tests := []struct {
		category   string
		background color.Color
		ink        color.Color
		script     string
	}{
		{"Cc", LightCyan, Black, ""},
		{"Zs", LightCyan, DarkGray, ""},
		{"Co", nil, PrivateUsePurple, "Private Use"},
		{"Lu", nil, DarkGray, ""},
	}

	for _, tt := range tests {
		p := PlanFor(tt.category)
		if p.Kind != Classify(tt.category) {
			t.Errorf("PlanFor(%q).Kind = %v, want %v", tt.category, p.Kind, Classify(tt.category))
		}
		if p.Background != tt.background {
			t.Errorf("PlanFor(%q).Background = %v, want %v", tt.category, p.Background, tt.background)
		}
		if p.Ink != tt.ink {
			t.Errorf("PlanFor(%q).Ink = %v, want %v", tt.category, p.Ink, tt.ink)
		}
		if p.Script != tt.script {
			t.Errorf("PlanFor(%q).Script = %q, want %q", tt.category, p.Script, tt.script)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindSkip, "Skip"},
		{KindControl, "Control"},
		{KindSpace, "Space"},
		{KindPrivateUse, "PrivateUse"},
		{KindGraphic, "Graphic"},
		{Kind(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestControlPicture(t *testing.T) {
	tests := []struct {
		r    rune
		want rune
		ok   bool
	}{
		{0x00, 0x2400, true},
		{0x09, 0x2409, true},
		{0x1F, 0x241F, true},
		{0x7F, 0x2421, true},
		{0x20, 0, false},
		{0x85, 0, false},
		{0x200B, 0, false},
	}

	for _, tt := range tests {
		got, ok := controlPicture(tt.r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("controlPicture(%U) = %U, %v; want %U, %v", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}
