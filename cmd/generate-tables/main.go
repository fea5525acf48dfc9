// Command generate-tables regenerates the inverse-Vandermonde tables in
// internal/vandermonde/tables_generated.go.
//
// Two tables are produced up to -max-degree:
//
//	sigma(n, k) = tau_{n-k}(n), the signed Stirling numbers of the first
//	kind, via sigma(0,0) = 1 and sigma(n+1, k) = sigma(n, k-1) - n*sigma(n, k).
//
//	lowerTriangle(k, i) = (-1)^(k-i) * choose(k, i), row k of the inverse of
//	the lower-triangular factor of the k x k Vandermonde matrix V_ij = j^i,
//	scaled by k! to clear fractions.
//
// Entries are stored as int32. The generator computes in int64 and refuses
// to emit a table containing an entry outside the int32 range, which is what
// bounds the supported max degree.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"math"
	"os"
)

func main() {
	maxDegree := flag.Int("max-degree", 12, "largest supported polynomial degree")
	out := flag.String("out", "internal/vandermonde/tables_generated.go", "output file")
	flag.Parse()

	md := *maxDegree
	sigma, err := sigmaTable(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-tables: %v\n", err)
		os.Exit(1)
	}
	lower, err := lowerTriangleTable(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-tables: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cmd/generate-tables; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package vandermonde\n\n")
	fmt.Fprintf(&buf, "// sigma[n][k] = tau_{n-k}(n), the signed Stirling numbers of the first kind,\n")
	fmt.Fprintf(&buf, "// for 0 <= n, k <= MaxDegree. Entries with k > n are zero.\n")
	fmt.Fprintf(&buf, "var sigma = [MaxDegree + 1][MaxDegree + 1]int32{\n")
	for _, row := range sigma {
		writeRow(&buf, row)
	}
	fmt.Fprintf(&buf, "}\n\n")
	fmt.Fprintf(&buf, "// lowerTriangle[k-1][i-1] = (-1)^(k-i) * choose(k, i) for 1 <= i <= k <= MaxDegree.\n")
	fmt.Fprintf(&buf, "var lowerTriangle = [MaxDegree][]int32{\n")
	for _, row := range lower {
		writeRow(&buf, row)
	}
	fmt.Fprintf(&buf, "}\n")

	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "generate-tables: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (max degree %d)\n", *out, md)
}

// sigmaTable computes sigma up to degree md, checking for int32 overflow.
func sigmaTable(md int) ([][]int64, error) {
	s := make([][]int64, md+1)
	for n := range s {
		s[n] = make([]int64, md+1)
	}
	s[0][0] = 1
	for n := 0; n < md; n++ {
		for k := 0; k <= md; k++ {
			v := -int64(n) * s[n][k]
			if k > 0 {
				v += s[n][k-1]
			}
			if v < math.MinInt32 || v > math.MaxInt32 {
				return nil, fmt.Errorf(
					"sigma(%d, %d) = %d overflows int32; lower -max-degree", n+1, k, v)
			}
			s[n+1][k] = v
		}
	}
	return s, nil
}

// lowerTriangleTable computes the scaled inverse lower-triangular rows.
func lowerTriangleTable(md int) ([][]int64, error) {
	rows := make([][]int64, md)
	for k := 1; k <= md; k++ {
		row := make([]int64, k)
		c := int64(1) // choose(k, 0)
		for i := 1; i <= k; i++ {
			c = c * int64(k-i+1) / int64(i)
			if c > math.MaxInt32 {
				return nil, fmt.Errorf("choose(%d, %d) overflows int32", k, i)
			}
			row[i-1] = c
			if (k-i)%2 == 1 {
				row[i-1] = -row[i-1]
			}
		}
		rows[k-1] = row
	}
	return rows, nil
}

func writeRow(buf *bytes.Buffer, row []int64) {
	buf.WriteString("\t{")
	for i, v := range row {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%d", v)
	}
	buf.WriteString("},\n")
}
