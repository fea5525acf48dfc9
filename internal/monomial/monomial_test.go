package monomial

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/exactgeom/perturb/internal/errors"
)

func binomial(n, k int) int {
	num, den := 1, 1
	for i := 1; i <= k; i++ {
		num *= n - k + i
		den *= i
	}
	return num / den
}

func TestCountMatchesBinomial(t *testing.T) {
	for degree := 0; degree <= 8; degree++ {
		for vars := 1; vars <= 5; vars++ {
			got, err := Count(degree, vars)
			if err != nil {
				t.Fatalf("Count(%d, %d): %v", degree, vars, err)
			}
			if want := binomial(degree+vars, degree); got != want {
				t.Errorf("Count(%d, %d) = %d, want %d", degree, vars, got, want)
			}
		}
	}
}

func TestCountRejectsOverflow(t *testing.T) {
	// choose(20+12, 12) is about 2.3e8, far past the 2^20 cap.
	_, err := Count(12, 20)
	if err == nil {
		t.Fatal("expected an error above the monomial cap")
	}
	if !errors.As(err, &apperrors.PreconditionError{}) {
		t.Fatalf("want PreconditionError, got %T", err)
	}
}

func TestEnumerateOrderAndUniqueness(t *testing.T) {
	for degree := 0; degree <= 6; degree++ {
		for vars := 1; vars <= 4; vars++ {
			tab, err := Enumerate(degree, vars)
			if err != nil {
				t.Fatalf("Enumerate(%d, %d): %v", degree, vars, err)
			}
			want, _ := Count(degree, vars)
			if tab.Rows != want {
				t.Fatalf("Enumerate(%d, %d) produced %d rows, want %d",
					degree, vars, tab.Rows, want)
			}
			seen := make(map[string]bool, tab.Rows)
			prevTotal := 0
			for k := 0; k < tab.Rows; k++ {
				row := tab.Row(k)
				total := 0
				for _, a := range row {
					total += int(a)
				}
				if total > degree {
					t.Fatalf("row %d exceeds total degree %d: %v", k, degree, row)
				}
				if total < prevTotal {
					t.Fatalf("total degree not ascending at row %d: %v", k, row)
				}
				prevTotal = total
				key := String(row)
				if seen[key] {
					t.Fatalf("duplicate multi-index %s", key)
				}
				seen[key] = true
			}
			if tab.Rows > 0 {
				for _, a := range tab.Row(0) {
					if a != 0 {
						t.Fatalf("row 0 is %v, want all zeros", tab.Row(0))
					}
				}
			}
		}
	}
}

func TestEnumerateZeroVariables(t *testing.T) {
	tab, err := Enumerate(3, 0)
	if err != nil {
		t.Fatalf("Enumerate(3, 0): %v", err)
	}
	if tab.Rows != 1 || tab.Vars != 0 {
		t.Fatalf("Enumerate(3, 0) = %d x %d, want a single empty row", tab.Rows, tab.Vars)
	}
}

// The infinitesimal size order compares from the highest perturbation level
// down, and the larger exponent there is the smaller infinitesimal.
func TestLessPolarity(t *testing.T) {
	cases := []struct {
		a, b []uint8
		want bool
	}{
		{[]uint8{0, 2}, []uint8{0, 1}, true},   // more of the tiny variable: smaller
		{[]uint8{0, 1}, []uint8{0, 2}, false},  // less of the tiny variable: larger
		{[]uint8{5, 1}, []uint8{0, 1}, true},   // tie on the high level, decided below
		{[]uint8{0, 1}, []uint8{5, 1}, false},
		{[]uint8{3, 2}, []uint8{3, 2}, false},  // equal: not less
		{[]uint8{1, 0, 0}, []uint8{0, 0, 1}, false},
		{[]uint8{0, 0, 1}, []uint8{1, 0, 0}, true},
	}
	for _, c := range cases {
		if got := Less(c.a, c.b); got != c.want {
			t.Errorf("Less(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestString(t *testing.T) {
	if s := String([]uint8{0, 2, 1}); s != "021" {
		t.Errorf("String = %q, want %q", s, "021")
	}
}

func ExampleEnumerate() {
	tab, _ := Enumerate(2, 2)
	for k := 0; k < tab.Rows; k++ {
		fmt.Println(String(tab.Row(k)))
	}
	// Output:
	// 00
	// 01
	// 10
	// 02
	// 11
	// 20
}
