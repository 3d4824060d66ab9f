package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"searchlens/analyzer/evaldata"
	"searchlens/analyzer/report"
)

type cliOptions struct {
	dataSource string
	sortOrder  string
	filter     string
	top        int
	reportPath string
	csvPath    string
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("searchlens-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("searchlens-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	_ = godotenv.Load()

	var opts cliOptions
	flag.StringVar(&opts.dataSource, "data", "", "Dataset URL or file (default: $SEARCHLENS_DATA or "+evaldata.DefaultSource+")")
	flag.StringVar(&opts.sortOrder, "sort", string(evaldata.SortWorst), "Query order: worst, best or alphabetical")
	flag.StringVar(&opts.filter, "filter", "", "Only include queries containing this text")
	flag.IntVar(&opts.top, "top", 10, "Number of queries to print (0 for all)")
	flag.StringVar(&opts.reportPath, "report", "", "Write an HTML report to this file")
	flag.StringVar(&opts.csvPath, "csv", "", "Write a summary CSV to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.dataSource = strings.TrimSpace(opts.dataSource)
	if opts.dataSource == "" {
		opts.dataSource = os.Getenv("SEARCHLENS_DATA")
	}
	if !evaldata.SortOrder(opts.sortOrder).Valid() {
		flag.Usage()
		return opts, fmt.Errorf("unknown sort order %q", opts.sortOrder)
	}
	if opts.top < 0 {
		return opts, errors.New("-top must not be negative")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	ds, err := evaldata.Load(context.Background(), opts.dataSource)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	summaries := evaldata.SortSummaries(
		evaldata.FilterSummaries(evaldata.BuildSummaries(ds), opts.filter),
		evaldata.SortOrder(opts.sortOrder))

	printOverview(evaldata.ComputeOverview(summaries))
	printQueries(summaries, opts.top)

	if opts.reportPath != "" {
		if err := writeReport(opts.reportPath, ds, summaries); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", opts.reportPath)
	}
	if opts.csvPath != "" {
		if err := writeSummaryCSV(opts.csvPath, summaries); err != nil {
			return err
		}
		fmt.Printf("Summary CSV written to %s\n", opts.csvPath)
	}
	return nil
}

func printOverview(o evaldata.Overview) {
	bold := color.New(color.Bold)

	bold.Println("==== Search Relevance Overview ====")
	fmt.Printf("Queries: %d\n", o.TotalQueries)
	if o.HasQueries() {
		fmt.Printf("Avg relevance: %.1f%%\n", o.AvgRelevance*100)
	} else {
		fmt.Println("Avg relevance: -")
	}
	fmt.Printf("Relevant results: %d / %d\n", o.TotalRelevant, o.TotalResults)

	color.Green("  Perfect (100%%):   %d", o.PerfectQueries)
	color.Cyan("  Good (80-99%%):    %d", o.GoodQueries)
	color.Yellow("  Moderate (50-79%%): %d", o.ModerateQueries)
	color.Red("  Poor (<50%%):      %d", o.PoorQueries)
	fmt.Println()
}

func printQueries(summaries []evaldata.QuerySummary, top int) {
	if len(summaries) == 0 {
		fmt.Println("No queries found")
		return
	}
	limit := len(summaries)
	if top > 0 && top < limit {
		limit = top
	}
	for i := 0; i < limit; i++ {
		s := summaries[i]
		fmt.Printf("%3d. %-40s %s  %d/%d relevant  %s\n",
			i+1, truncate(s.Query, 40),
			fmt.Sprintf("%5.1f%%", s.RelevanceRate*100),
			s.RelevantCount, s.TotalResults,
			tierString(evaldata.TierFor(s.RelevanceRate)))
	}
	if limit < len(summaries) {
		fmt.Printf("... and %d more\n", len(summaries)-limit)
	}
}

func tierString(t evaldata.Tier) string {
	switch t {
	case evaldata.TierExcellent:
		return color.GreenString(string(t))
	case evaldata.TierGood:
		return color.CyanString(string(t))
	case evaldata.TierModerate:
		return color.YellowString(string(t))
	default:
		return color.RedString(string(t))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func writeReport(path string, ds *evaldata.Dataset, summaries []evaldata.QuerySummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := report.Write(f, report.Build(ds, summaries)); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func writeSummaryCSV(path string, summaries []evaldata.QuerySummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"query", "relevance_rate", "avg_confidence", "relevant_count", "total_results", "tier"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, s := range summaries {
		row := []string{
			s.Query,
			strconv.FormatFloat(s.RelevanceRate, 'f', 4, 64),
			strconv.FormatFloat(s.AvgConfidence, 'f', 4, 64),
			strconv.Itoa(s.RelevantCount),
			strconv.Itoa(s.TotalResults),
			string(evaldata.TierFor(s.RelevanceRate)),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
