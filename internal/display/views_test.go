package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jobcrawler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sampleJobs = []models.Job{
	{ID: 1, Title: "Go Developer", Company: "Acme GmbH", Location: "Berlin", URL: "https://example.com/jobs/1", Source: "stepstone"},
	{ID: 2, Title: "Platform Engineer", Company: "Initech", Location: "Hamburg", URL: "https://example.com/jobs/2", Source: "stepstone"},
}

func TestNewViewRejectsUnknownFormat(t *testing.T) {
	_, err := NewView(&bytes.Buffer{}, OutputOptions{Format: "csv"})
	require.Error(t, err)
}

func TestTableView(t *testing.T) {
	var buf bytes.Buffer
	view, err := NewView(&buf, OutputOptions{Format: TableFormat, NoStyle: true})
	require.NoError(t, err)

	require.NoError(t, view.Render(sampleJobs))

	out := buf.String()
	for _, want := range []string{"TITLE", "COMPANY", "Go Developer", "Initech", "Hamburg", "https://example.com/jobs/2"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, strings.ToLower(out), "2 jobs")
}

func TestTableViewTruncatesURLUnlessWide(t *testing.T) {
	long := models.Job{ID: 3, URL: "https://example.com/" + strings.Repeat("x", 100)}

	var narrow bytes.Buffer
	view, err := NewView(&narrow, OutputOptions{NoStyle: true})
	require.NoError(t, err)
	require.NoError(t, view.Render([]models.Job{long}))
	assert.NotContains(t, narrow.String(), long.URL)

	var wide bytes.Buffer
	view, err = NewView(&wide, OutputOptions{NoStyle: true, Wide: true})
	require.NoError(t, err)
	require.NoError(t, view.Render([]models.Job{long}))
	assert.Contains(t, wide.String(), long.URL)
}

func TestJSONView(t *testing.T) {
	var buf bytes.Buffer
	view, err := NewView(&buf, OutputOptions{Format: JSONFormat})
	require.NoError(t, err)
	require.NoError(t, view.Render(sampleJobs))

	var decoded []models.Job
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleJobs, decoded)
}

func TestJSONViewEmptyList(t *testing.T) {
	var buf bytes.Buffer
	view, err := NewView(&buf, OutputOptions{Format: JSONFormat})
	require.NoError(t, err)
	require.NoError(t, view.Render([]models.Job{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLView(t *testing.T) {
	var buf bytes.Buffer
	view, err := NewView(&buf, OutputOptions{Format: YAMLFormat})
	require.NoError(t, err)
	require.NoError(t, view.Render(sampleJobs))

	assert.Contains(t, buf.String(), "title: Go Developer")

	var decoded []models.Job
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleJobs, decoded)
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	NewWriterNotifier(&buf).Notify(FailureMessage)
	assert.Equal(t, "Error: "+FailureMessage+"\n", buf.String())
}
