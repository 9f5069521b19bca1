package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// formatSingle renders a one-die roll
func formatSingle(value int) string {
	return strconv.Itoa(value) + "\n"
}

// formatValues renders a multi-die roll as a bracketed list
func formatValues(values []int) string {
	return bracketList(values) + "\n"
}

// formatSum renders a multi-die roll with its total
func formatSum(values []int, sum int) string {
	return fmt.Sprintf("Results: %s  -> Sum = %d\n", bracketList(values), sum)
}

func bracketList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
