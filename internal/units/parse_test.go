package units

import (
	"errors"
	"testing"
)

func TestParse_PlainNumerals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"42", 42},
		{" 3.3 ", 3.3},
		{"5.", 5},
		{".5", 0.5},
		{"007", 7},
	}

	for _, tc := range tests {
		got, err := Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParse_Suffixes(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1k", 1000},
		{"10uf", 1e-5},
		{"10uF", 1e-5},
		{"10 uF", 1e-5},
		{"4.7k", 4700},
		{"100nF", 1e-7},
		{"22pf", 22e-12},
		{"3.3V", 3.3},
		{"5mV", 5e-3},
		{"250uv", 250e-6},
		{"10mH", 10e-3},
		{"47uh", 47e-6},
		{"100nh", 100e-9},
		{"2meg", 2e6},
		{"20mA", 20e-3},
		{"4.7µF", 4.7e-6},
		{"10μF", 1e-5},
		{"4.7μf", 4.7e-6},
		{"1khz", 1000},
		{"15m", 15e-3},
		{"3n", 3e-9},
		{"8p", 8e-12},
	}

	for _, tc := range tests {
		got, err := Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParse_EverySuffixScales(t *testing.T) {
	for _, sfx := range Suffixes() {
		got, err := Parse("10" + sfx.Text)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", "10"+sfx.Text, err)
			continue
		}
		want, _ := scaled("10", sfx.Exponent, "")
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", "10"+sfx.Text, got, want)
		}
	}
}

func TestParse_Ohms(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"220Ω", 220},
		{"220 ohm", 220},
		{"220 Ohms", 220},
		{"4.7kΩ", 4700},
		{"1k ohms", 1000},
		{"10Ω", 10},
	}

	for _, tc := range tests {
		got, err := Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"1.2.3",
		"k",
		"ohm",
		"-5",
		"1e3",
		"1,000",
		"10x",
		"uf10",
		"1.2.3k",
		"1ohm0",
		"ohm5",
		"5 ohm ohm",
		"Ω10",
		"10 ohms ohm",
	}

	for _, in := range inputs {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
			continue
		}
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidValue", in, err)
		}
	}
}

func TestSuffixes_LongestFirst(t *testing.T) {
	table := Suffixes()
	for i := 1; i < len(table); i++ {
		if len([]rune(table[i].Text)) > len([]rune(table[i-1].Text)) {
			t.Fatalf("suffix %q (index %d) is longer than %q", table[i].Text, i, table[i-1].Text)
		}
	}
}

func TestClean(t *testing.T) {
	if got := Clean("  10   UF \t"); got != "10 uf" {
		t.Errorf("Clean = %q, want %q", got, "10 uf")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{4700, "4.7k"},
		{1e-5, "10u"},
		{2e6, "2M"},
		{3.3, "3.3"},
		{0.02, "20m"},
		{22e-12, "22p"},
	}

	for _, tc := range tests {
		if got := Format(tc.v); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}
