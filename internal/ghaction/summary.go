// SPDX-License-Identifier: MPL-2.0

package ghaction

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders a job summary for a terminal.
func RenderMarkdown(markdown string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return renderer.Render(markdown)
}

// WriteSummary appends markdown to the runner's job summary when one exists,
// and otherwise renders it to w.
func WriteSummary(r *Runner, w io.Writer, markdown string) error {
	written, err := r.AppendSummary(markdown)
	if err != nil || written {
		return err
	}

	rendered, err := RenderMarkdown(markdown, 0)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}
