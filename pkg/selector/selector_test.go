package selector

import (
	"reflect"
	"testing"
)

func TestParseAndResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		n       int
		want    []int
		wantErr bool
	}{
		{name: "empty selects all", input: "", n: 3, want: []int{0, 1, 2}},
		{name: "star selects all", input: "*", n: 2, want: []int{0, 1}},
		{name: "single index", input: "1", n: 4, want: []int{1}},
		{name: "range", input: "1-3", n: 5, want: []int{1, 2, 3}},
		{name: "list and range", input: "0,2-3,6", n: 8, want: []int{0, 2, 3, 6}},
		{name: "whitespace tolerated", input: " 0 , 2 - 3 ", n: 4, want: []int{0, 2, 3}},
		{name: "overlapping spans dedupe", input: "0-2,1-3", n: 5, want: []int{0, 1, 2, 3}},
		{name: "out of range", input: "9", n: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			got, err := sel.Indices(tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Indices failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Indices = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"a", "1-", "-2", "1--3", "5-2", "1;2"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}

func TestContainsAndMax(t *testing.T) {
	sel, err := Parse("2-4,8")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if sel.All() {
		t.Error("All() = true for explicit selection")
	}
	for i, want := range map[int]bool{1: false, 2: true, 4: true, 5: false, 8: true} {
		if sel.Contains(i) != want {
			t.Errorf("Contains(%d) = %v, want %v", i, !want, want)
		}
	}
	if sel.Max() != 8 {
		t.Errorf("Max() = %d, want 8", sel.Max())
	}

	all, _ := Parse("*")
	if all.Max() != -1 || !all.Contains(999) {
		t.Error("star selection misbehaves")
	}
}
