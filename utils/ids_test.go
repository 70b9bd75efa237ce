package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeID(t *testing.T) {
	cases := []struct{ in, want string }{
		{"User-1", "user-1"},
		{"  user-1  ", "user-1"},
		{"5F2B9C", "5f2b9c"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeID(tc.in); got != tc.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContainsID(t *testing.T) {
	ids := []string{"u1", "U2", " u3 "}
	if !ContainsID(ids, "u2") {
		t.Error("ContainsID() missed a differently-cased id")
	}
	if !ContainsID(ids, "U3") {
		t.Error("ContainsID() missed a padded id")
	}
	if ContainsID(ids, "u4") {
		t.Error("ContainsID() found an absent id")
	}
}

func TestRemoveID(t *testing.T) {
	ids := []string{"u1", "U2", "u3"}
	got := RemoveID(ids, "u2")
	if !reflect.DeepEqual(got, []string{"u1", "u3"}) {
		t.Errorf("RemoveID() = %v, want [u1 u3]", got)
	}

	// Removing an absent id changes nothing.
	got = RemoveID(ids, "u9")
	if !reflect.DeepEqual(got, []string{"u1", "U2", "u3"}) {
		t.Errorf("RemoveID() = %v, want original order preserved", got)
	}
}
