package scanner

import "regexp"

// Line recognizers for Gurobi-style solver transcripts. Each regexp is
// compiled once and matches a single line; a recognizer either matches
// fully or not at all.
var (
	reTimeLimit = regexp.MustCompile(`\bTime limit reached\b`)
	reOptimal   = regexp.MustCompile(`\bOptimal solution found\b`)

	// "Best objective 1.9000e+02, best bound 1.9000e+02, gap 0.0000%"
	reBestLine = regexp.MustCompile(`(?i)Best objective\s+([+-]?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?),\s*best bound\s+([+-]?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?),\s*gap\s+([0-9]*\.?[0-9]+)%`)

	// "Explored 1 nodes (3672 simplex iterations) in 0.44 seconds (0.84 work units)"
	reExplored = regexp.MustCompile(`(?i)Explored\s+(\d+)\s+nodes?\s*\(\s*(\d+)\s+simplex iterations\s*\)\s+in\s+([0-9]*\.?[0-9]+)\s+seconds\s*\(\s*([0-9]*\.?[0-9]+)\s+work units\s*\)`)

	// Header of the branch-and-bound progress table. Column spacing varies
	// between solver versions, so only the token order is pinned down.
	reTableHeader = regexp.MustCompile(`(?i)Expl\s+Unexpl.*Incumbent\s+BestBd\s+Gap.*It/Node\s+Time`)

	// A progress row starts with two integers (node counts), optionally
	// preceded by a heuristic marker such as "H ".
	reProgressRow = regexp.MustCompile(`^(H\s+)?\d+\s+\d+\s+`)

	rePercent = regexp.MustCompile(`([0-9]*\.?[0-9]+%)`)
)

// zeroGap is the textual zero the solver prints on its final gap line.
// Objective capture is gated on this exact text, not on a parsed value:
// a non-final incumbent must never be reported as the objective.
const zeroGap = "0.0000"
