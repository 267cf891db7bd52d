package ui_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *ui.Report {
	report := &ui.Report{Action: "link", Message: "2 links established"}
	report.Add(ui.Item{Status: ui.StatusLinked, Source: "/pkg/a", Target: "/app/ext/a", Strategy: "symlink"}).
		Add(ui.Item{Status: ui.StatusCopied, Source: "/pkg/b", Target: "/app/ext/b", Strategy: "copy"})
	return report
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderReport(sampleReport()))
	assert.Equal(t,
		"2 links established\n"+
			"linked   /app/ext/a -> /pkg/a (symlink)\n"+
			"copied   /app/ext/b -> /pkg/b (copy)\n",
		buf.String())

	buf.Reset()
	require.NoError(t, r.RenderReport(&ui.Report{Items: []ui.Item{
		{Status: ui.StatusFailed, Target: "/app/ext/c", Detail: "boom"},
	}}))
	assert.Equal(t, "failed   /app/ext/c: boom\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderReport(&ui.Report{Items: []ui.Item{
		{Status: ui.StatusYes, Name: "typo3-cms-extension"},
		{Status: ui.StatusPresent, Name: "extension", Target: "/app/typo3conf/ext"},
	}}))
	assert.Equal(t, "yes      typo3-cms-extension\npresent  extension /app/typo3conf/ext\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(fmt.Errorf("bad thing")))
	assert.Equal(t, "Error: bad thing\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderReport(sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "2 links established")
	assert.Contains(t, out, "/app/ext/a -> /pkg/a")
	assert.Contains(t, out, "copied")

	buf.Reset()
	report := sampleReport()
	report.Tabular = true
	require.NoError(t, r.RenderReport(report))
	assert.Contains(t, buf.String(), "Strategy")
	assert.Contains(t, buf.String(), "/app/ext/b")

	buf.Reset()
	require.NoError(t, r.RenderError(fmt.Errorf("bad thing")))
	assert.Contains(t, buf.String(), "Error: bad thing")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderReport(sampleReport()))
	var decoded ui.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "link", decoded.Action)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, ui.StatusCopied, decoded.Items[1].Status)

	t.Run("empty report has an items array", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, r.RenderReport(&ui.Report{Action: "status"}))
		assert.Contains(t, buf.String(), `"items": []`)
	})

	t.Run("coded errors carry code and details", func(t *testing.T) {
		buf.Reset()
		linkErr := errors.Newf(errors.ErrTargetExists, "the symlink target %q already exists", "/app/x").
			WithDetail("target", "/app/x")
		require.NoError(t, r.RenderError(linkErr))

		var obj map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &obj))
		assert.Equal(t, "TARGET_EXISTS", obj["code"])
		assert.Equal(t, map[string]interface{}{"target": "/app/x"}, obj["details"])
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, r.RenderError(fmt.Errorf("plain")))
		assert.NotContains(t, buf.String(), "code")
	})
}

func TestNewRenderer_AutoOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())

	_, err = ui.NewRenderer(ui.Format(42), &buf)
	assert.Error(t, err)
}

func TestReport_Failed(t *testing.T) {
	report := sampleReport()
	assert.False(t, report.Failed())
	report.Add(ui.Item{Status: ui.StatusFailed, Target: "/x"})
	assert.True(t, report.Failed())
}
