package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jobcrawler/infrastructure"
	"github.com/jobcrawler/internal/display"
	"github.com/jobcrawler/internal/models"
	"github.com/jobcrawler/internal/services"
	"github.com/jobcrawler/internal/utils"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const searchExample = `  # Go jobs in Berlin from Stepstone
  jobcrawler search --title "Go Developer" --city Berlin

  # Query both sources, one after the other, as JSON
  jobcrawler search --source stepstone --source monster --title golang -o json`

type SearchOptions struct {
	display.OutputOptions
	Sources        []string
	Title          string
	City           string
	APIURL         string
	ResponseFormat string
	Timeout        time.Duration
}

func NewSearchOptions() *SearchOptions {
	return &SearchOptions{
		OutputOptions: display.OutputOptions{Format: display.TableFormat},
		Sources:       []string{models.SourceStepstone},
	}
}

func NewSearchCmd(cfg infrastructure.Config) *cobra.Command {
	o := NewSearchOptions()
	searchCmd := &cobra.Command{
		Use:     "search",
		Short:   "Fetch jobs for a title and city from one or more sources",
		Example: searchExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, cfg)
		},
	}

	formats := lo.Map(display.AllFormats, func(f display.OutputFormat, _ int) string { return string(f) })

	flags := searchCmd.Flags()
	flags.StringArrayVarP(&o.Sources, "source", "s", o.Sources,
		fmt.Sprintf("Backend source to query, may be repeated (e.g. %s, %s)", models.SourceStepstone, models.SourceMonster))
	flags.StringVarP(&o.Title, "title", "t", "", "Job title filter")
	flags.StringVarP(&o.City, "city", "c", "", "City filter")
	flags.StringVar(&o.APIURL, "api-url", "", "Backend address the source is appended to (overrides JOBCRAWLER_API_URL)")
	flags.StringVar(&o.ResponseFormat, "response-format", "", "Backend response contract: envelope or list")
	flags.DurationVar(&o.Timeout, "timeout", 0, "Request timeout (overrides JOBCRAWLER_REQUEST_TIMEOUT)")
	flags.StringVarP((*string)(&o.Format), "output", "o", string(o.Format),
		fmt.Sprintf("Output format, one of: %s", strings.Join(formats, ", ")))
	flags.BoolVar(&o.Wide, "wide", false, "Print full values in table output")
	flags.BoolVar(&o.NoStyle, "no-style", false, "Remove all styling from table output")

	return searchCmd
}

func (o *SearchOptions) run(cmd *cobra.Command, cfg infrastructure.Config) error {
	if o.APIURL != "" {
		cfg.APIURL = o.APIURL
	}
	if o.ResponseFormat != "" {
		cfg.ResponseFormat = models.ResponseFormat(o.ResponseFormat)
	}
	if o.Timeout != 0 {
		cfg.RequestTimeout = o.Timeout
	}
	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	view, err := display.NewView(cmd.OutOrStdout(), o.OutputOptions)
	if err != nil {
		return err
	}

	sources := lo.Uniq(lo.Map(o.Sources, func(s string, _ int) string { return strings.TrimSpace(s) }))
	if len(sources) == 0 {
		sources = []string{models.SourceStepstone}
	}

	// Arguments are valid from here on; failures below are fetch failures.
	cmd.SilenceUsage = true

	logger := infrastructure.NewLogger(cfg, cmd.ErrOrStderr())
	requester := utils.NewHTTPRequest(utils.RequestConfig{
		Timeout:   cfg.RequestTimeout,
		Interval:  cfg.RequestInterval,
		UserAgent: cfg.UserAgent,
	})
	contentService := services.NewContentService(cfg.BaseURL(), cfg.ResponseFormat, requester, logger)
	board := display.NewBoard(contentService, view, display.NewWriterNotifier(cmd.ErrOrStderr()), logger)

	failed := 0
	for _, source := range sources {
		err := board.FetchJobs(cmd.Context(), models.SearchQuery{
			Source: source,
			Title:  o.Title,
			City:   o.City,
		})
		if err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d searches failed", failed, len(sources))
	}
	return nil
}
