// Package lpgen generates bin-packing MILP instances in CPLEX LP format.
//
// The instances are deliberately hard: item sizes cluster around half the
// bin capacity in a small number of classes, which maximizes symmetry in
// the assignment model and stresses the solver's branching.
package lpgen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
)

// Params describes one generated instance.
type Params struct {
	Capacity int // bin capacity B
	Items    int // number of items n
	Classes  int // number of distinct size classes
	Seed     int64
}

func (p Params) validate() error {
	if p.Items <= 0 {
		return fmt.Errorf("items must be positive, got %d", p.Items)
	}
	if p.Capacity <= 1 {
		return fmt.Errorf("capacity must be at least 2, got %d", p.Capacity)
	}
	if p.Classes <= 0 {
		return fmt.Errorf("classes must be positive, got %d", p.Classes)
	}
	return nil
}

// effectiveSeed derives the RNG seed. The item count is folded in so
// that instances of different sizes never share a size sequence.
func (p Params) effectiveSeed() int64 {
	return p.Seed + int64(p.Items)
}

// HalfCapacityClassSizes draws n item sizes from a band of class values
// centered on B/2, clamped to [1, B-1]. The draw is deterministic for a
// given Params.
func HalfCapacityClassSizes(p Params) ([]int, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(p.effectiveSeed()))
	half := p.Capacity / 2

	var values []int
	if p.Classes%2 == 1 {
		k := p.Classes / 2
		for v := half - k; v <= half+k; v++ {
			values = append(values, v)
		}
	} else {
		for v := half - (p.Classes/2 - 1); v <= half+p.Classes/2; v++ {
			values = append(values, v)
		}
	}

	var valid []int
	for _, v := range values {
		if v >= 1 && v <= p.Capacity-1 {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no feasible size classes for capacity %d with %d classes", p.Capacity, p.Classes)
	}

	sizes := make([]int, p.Items)
	for i := range sizes {
		sizes[i] = valid[rng.Intn(len(valid))]
	}
	return sizes, nil
}

// WriteLP writes the bin-packing MILP for the given sizes in LP format:
// minimize the number of open bins, assign every item exactly once, and
// respect bin capacities. All variables are binary.
func WriteLP(w io.Writer, sizes []int, capacity int) error {
	bw := bufio.NewWriter(w)
	n := len(sizes)

	y := func(j int) string { return fmt.Sprintf("y_%d", j) }
	x := func(i, j int) string { return fmt.Sprintf("x_%d_%d", i, j) }

	fmt.Fprintf(bw, "\\ Bin Packing MILP (LP format)\n")     //nolint:errcheck
	fmt.Fprintf(bw, "\\ B=%d, n=%d, sizes=%v\n\n", capacity, n, sizes) //nolint:errcheck

	fmt.Fprintf(bw, "Minimize\n obj: ") //nolint:errcheck
	for j := 0; j < n; j++ {
		if j > 0 {
			bw.WriteString(" + ") //nolint:errcheck
		}
		bw.WriteString(y(j)) //nolint:errcheck
	}
	bw.WriteString("\n\nSubject To\n") //nolint:errcheck

	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, " assign_%d: ", i) //nolint:errcheck
		for j := 0; j < n; j++ {
			if j > 0 {
				bw.WriteString(" + ") //nolint:errcheck
			}
			bw.WriteString(x(i, j)) //nolint:errcheck
		}
		bw.WriteString(" = 1\n") //nolint:errcheck
	}

	for j := 0; j < n; j++ {
		fmt.Fprintf(bw, " cap_%d: ", j) //nolint:errcheck
		for i := 0; i < n; i++ {
			if i > 0 {
				bw.WriteString(" + ") //nolint:errcheck
			}
			fmt.Fprintf(bw, "%d %s", sizes[i], x(i, j)) //nolint:errcheck
		}
		fmt.Fprintf(bw, " - %d %s <= 0\n", capacity, y(j)) //nolint:errcheck
	}

	bw.WriteString("\nBinary\n") //nolint:errcheck
	for j := 0; j < n; j++ {
		fmt.Fprintf(bw, " %s\n", y(j)) //nolint:errcheck
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fmt.Fprintf(bw, " %s\n", x(i, j)) //nolint:errcheck
		}
	}
	bw.WriteString("End\n") //nolint:errcheck

	return bw.Flush()
}

// Generate writes one instance into outDir and returns the file path.
// Sizes are sorted ascending before writing so that equal instances are
// byte-identical, and the filename encodes every parameter.
func Generate(p Params, outDir string) (string, error) {
	sizes, err := HalfCapacityClassSizes(p)
	if err != nil {
		return "", err
	}
	sort.Ints(sizes)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("hardness_halfcap_sorted_n%d_B%d_classes%d_seed%d.lp",
		p.Items, p.Capacity, p.Classes, p.effectiveSeed())
	path := filepath.Join(outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteLP(f, sizes, p.Capacity); err != nil {
		f.Close() //nolint:errcheck
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
