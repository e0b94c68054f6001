package ui

import (
	"fmt"
	"strings"

	"KolamStudio/internal/analysis"
)

// formatReport renders an analysis result the way the studio's side
// panel has always shown it.
func formatReport(res *analysis.Result) string {
	var b strings.Builder

	b.WriteString("KOLAM PATTERN ANALYSIS\n")
	b.WriteString(strings.Repeat("=", 30) + "\n\n")

	b.WriteString("Basic Properties:\n")
	fmt.Fprintf(&b, "  Points: %d\n", res.NumPoints)
	fmt.Fprintf(&b, "  Center: (%.1f, %.1f)\n", res.Center.X, res.Center.Y)
	fmt.Fprintf(&b, "  Avg Radius: %.1f\n", res.AvgRadius)
	fmt.Fprintf(&b, "  Max Radius: %.1f\n", res.MaxRadius)
	fmt.Fprintf(&b, "  Complexity: %d/10\n", res.Complexity)
	fmt.Fprintf(&b, "  Colors: %s\n\n", strings.Join(res.ColorsUsed, ", "))

	b.WriteString("Symmetries Found:\n")
	if len(res.Symmetries) == 0 {
		b.WriteString("  No clear symmetries\n")
	}
	for _, s := range res.Symmetries {
		fmt.Fprintf(&b, "  + %s\n", s)
	}

	b.WriteString("\nDesign Classification:\n")
	fmt.Fprintf(&b, "  Type: %s\n", res.Classification)
	fmt.Fprintf(&b, "  Score: %s\n", res.Score)

	b.WriteString("\nMathematical Principles:\n")
	fmt.Fprintf(&b, "  Geometric harmony: %d%%\n", res.Harmony)
	fmt.Fprintf(&b, "  Pattern density: %d%%\n", res.Density)
	fmt.Fprintf(&b, "  Spatial balance: %d%%\n", res.Balance)

	fmt.Fprintf(&b, "\nAnalyzed at %s\n", res.Timestamp.Format("15:04:05"))
	return b.String()
}
