// Package ui renders command reports as styled terminal output, plain text
// or JSON.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer writes reports, errors and messages in one format.
type Renderer interface {
	RenderReport(report *Report) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format. FormatAuto is resolved
// against output when it is a file, and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &terminalRenderer{output: output}, nil
	case FormatText:
		return &textRenderer{output: output}, nil
	case FormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return &jsonRenderer{encoder: encoder}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

type textRenderer struct {
	output io.Writer
}

func (r *textRenderer) RenderReport(report *Report) error {
	if report.Message != "" {
		if _, err := fmt.Fprintln(r.output, report.Message); err != nil {
			return err
		}
	}
	for _, item := range report.Items {
		line := fmt.Sprintf("%-8s %s", item.Status, item.subject())
		if item.Strategy != "" {
			line += " (" + item.Strategy + ")"
		}
		if item.Created != "" {
			line += " " + item.Created
		}
		if item.Detail != "" {
			line += ": " + item.Detail
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

type terminalRenderer struct {
	output io.Writer
}

func (r *terminalRenderer) RenderReport(report *Report) error {
	var b strings.Builder
	if report.Message != "" {
		b.WriteString(styles.GetStyle("Header").Render(report.Message))
		b.WriteString("\n")
	}

	if report.Tabular && len(report.Items) > 0 {
		table, err := r.table(report)
		if err != nil {
			return err
		}
		b.WriteString(table)
	} else {
		for _, item := range report.Items {
			b.WriteString(r.line(item))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *terminalRenderer) line(item Item) string {
	parts := []string{
		statusStyle(item.Status).Sprint(styles.GetStyle("Status").Render(string(item.Status))),
		styles.GetStyle("FilePath").Render(item.subject()),
	}
	if item.Strategy != "" {
		parts = append(parts, styles.GetStyle("Strategy").Render(item.Strategy))
	}
	if item.Created != "" {
		parts = append(parts, styles.GetStyle("Muted").Render(item.Created))
	}
	if item.Detail != "" {
		parts = append(parts, styles.GetStyle("Muted").Render(item.Detail))
	}
	return styles.GetStyle("Indent").Render(strings.Join(parts, " "))
}

func (r *terminalRenderer) table(report *Report) (string, error) {
	data := pterm.TableData{{"Status", "Target", "Source", "Strategy", "Created"}}
	for _, item := range report.Items {
		data = append(data, []string{
			statusStyle(item.Status).Sprint(string(item.Status)),
			item.Target,
			item.Source,
			item.Strategy,
			item.Created,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func (r *terminalRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: "+err.Error()))
	return werr
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// statusStyle returns the pterm style for a status badge
func statusStyle(status Status) *pterm.Style {
	switch status {
	case StatusLinked, StatusRemoved, StatusPresent, StatusYes:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusCopied, StatusStale:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusFailed, StatusMissing, StatusNo:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

type jsonRenderer struct {
	encoder *json.Encoder
}

func (r *jsonRenderer) RenderReport(report *Report) error {
	if report.Items == nil {
		report = &Report{Action: report.Action, Message: report.Message, Items: []Item{}}
	}
	return r.encoder.Encode(report)
}

func (r *jsonRenderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		obj["code"] = string(code)
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
