package config

import (
	"reflect"
	"testing"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // unknown keeps the default
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestFloatEnvOrDefault(t *testing.T) {
	cases := map[string]float64{
		"":     1.5,
		"2.25": 2.25,
		"0":    0,
		"-1":   1.5,
		"x":    1.5,
	}
	for raw, want := range cases {
		t.Setenv("FLOAT_TEST", raw)
		if got := floatEnvOrDefault("FLOAT_TEST", 1.5); got != want {
			t.Fatalf("floatEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	def := []string{"*"}

	t.Setenv("LIST_TEST", " https://a.example , ,https://b.example ")
	if got := listEnvOrDefault("LIST_TEST", def); !reflect.DeepEqual(got, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected list %v", got)
	}

	t.Setenv("LIST_TEST", " , ")
	if got := listEnvOrDefault("LIST_TEST", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("expected default for empty items, got %v", got)
	}
}
