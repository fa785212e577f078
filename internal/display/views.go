package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jobcrawler/internal/models"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	TableFormat OutputFormat = "table"
	JSONFormat  OutputFormat = "json"
	YAMLFormat  OutputFormat = "yaml"
)

var AllFormats = []OutputFormat{TableFormat, JSONFormat, YAMLFormat}

type OutputOptions struct {
	Format  OutputFormat
	Wide    bool // Print full values instead of truncating long columns
	NoStyle bool
}

// NewView returns the view for options.Format writing to out.
func NewView(out io.Writer, options OutputOptions) (View, error) {
	switch options.Format {
	case TableFormat, "":
		return &TableView{out: out, options: options}, nil
	case JSONFormat:
		return &JSONView{out: out}, nil
	case YAMLFormat:
		return &YAMLView{out: out}, nil
	default:
		return nil, fmt.Errorf("invalid format %q", options.Format)
	}
}

type column struct {
	table.ColumnConfig
	Value func(models.Job) string
}

var jobColumns = []column{
	{
		ColumnConfig: table.ColumnConfig{Name: "ID", Align: text.AlignRight},
		Value:        func(j models.Job) string { return strconv.FormatInt(j.ID, 10) },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Title", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		Value:        func(j models.Job) string { return j.Title },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Company", WidthMax: 30, WidthMaxEnforcer: text.WrapSoft},
		Value:        func(j models.Job) string { return j.Company },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Location", WidthMax: 24, WidthMaxEnforcer: text.WrapSoft},
		Value:        func(j models.Job) string { return j.Location },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Source"},
		Value:        func(j models.Job) string { return j.Source },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "URL", WidthMax: 60, WidthMaxEnforcer: text.Trim},
		Value:        func(j models.Job) string { return j.URL },
	},
}

var noStyle = table.Style{
	Name:   "StyleDefault",
	Box:    table.StyleBoxDefault,
	Color:  table.ColorOptionsDefault,
	Format: table.FormatOptionsDefault,
	HTML:   table.DefaultHTMLOptions,
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
	Title: table.TitleOptionsDefault,
}

type TableView struct {
	out     io.Writer
	options OutputOptions
}

func (v *TableView) Render(jobs []models.Job) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(v.out)

	configs := lo.Map(jobColumns, func(c column, i int) table.ColumnConfig {
		config := c.ColumnConfig
		config.Number = i + 1
		if v.options.Wide {
			config.WidthMax = 0
			config.WidthMaxEnforcer = nil
		}
		return config
	})
	tw.SetColumnConfigs(configs)
	tw.AppendHeader(lo.Map(jobColumns, func(c column, _ int) any { return c.Name }))

	tw.SetStyle(table.StyleLight)
	if v.options.NoStyle {
		tw.SetStyle(noStyle)
	}

	for _, job := range jobs {
		tw.AppendRow(lo.Map(jobColumns, func(c column, _ int) any { return c.Value(job) }))
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d jobs", len(jobs))})

	tw.Render()
	return nil
}

type JSONView struct {
	out io.Writer
}

func (v *JSONView) Render(jobs []models.Job) error {
	encoder := json.NewEncoder(v.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jobs)
}

type YAMLView struct {
	out io.Writer
}

func (v *YAMLView) Render(jobs []models.Job) error {
	b, err := yaml.Marshal(jobs)
	if err != nil {
		return err
	}
	_, err = v.out.Write(b)
	return err
}

// WriterNotifier prints user-facing notifications, typically to stderr.
type WriterNotifier struct {
	out io.Writer
}

func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

func (n *WriterNotifier) Notify(message string) {
	fmt.Fprintln(n.out, "Error:", message)
}
