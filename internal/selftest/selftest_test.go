package selftest

import "testing"

// The full battery: every predicate family against brute force, twenty
// point ids each. m=2 forces one escalation round and m=3 forces two, so
// this exercises the whole multivariate path.
func TestMatrixAgainstBruteForce(t *testing.T) {
	for _, c := range Matrix(20) {
		if err := c.Run(); err != nil {
			t.Error(err)
		}
	}
}

func TestMatrixShape(t *testing.T) {
	cases := Matrix(7)
	if len(cases) != 3*3*7 {
		t.Fatalf("Matrix(7) has %d cases, want %d", len(cases), 3*3*7)
	}
	seen := make(map[Case]bool)
	for _, c := range cases {
		if seen[c] {
			t.Fatalf("duplicate case %s", c)
		}
		seen[c] = true
	}
}
