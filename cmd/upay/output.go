package main

import (
	"fmt"
	"io"
	"strings"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/upay/internal/theme"
)

var th = theme.New()

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool(flagJSON)
	return v
}

func printJSON(w io.Writer, v any) error {
	b, err := go_json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}

// row renders label/value pairs on one line, labels dimmed.
func row(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(th.Dim().Render(pairs[i] + "="))
		b.WriteString(pairs[i+1])
	}
	return b.String()
}
