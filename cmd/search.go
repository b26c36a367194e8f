package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastapply/fastapply/internal/aggregator"
	"github.com/fastapply/fastapply/internal/jobs"
)

const (
	PromptNextPage     = "Next page"
	PromptPreviousPage = "Previous page"
	PromptDumpToFile   = "Dump page to file"
	PromptExit         = "Exit"
)

var errExit = errors.New("exit requested")

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search remote job boards and rank the results against a skill set",
	Run: func(cmd *cobra.Command, _ []string) {
		search(cmd)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSliceP("skills", "s", nil, "skills to match against, comma separated")
	searchCmd.Flags().StringP("country", "c", "", "keep postings located in this country (remote ones always pass)")
	searchCmd.Flags().Int("min-salary", 0, "drop postings paying less than this")
	searchCmd.Flags().IntP("page", "p", 1, "result page to show")
	searchCmd.Flags().BoolP("auto-exit", "y", false, "print one page and exit without prompting")
}

func search(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	req := searchRequest(cmd, config)
	if len(req.Skills) == 0 {
		logger.Fatal("at least one skill is required",
			zap.String("hint", "pass --skills or set search.skills in the configuration file"),
		)
	}

	agg, err := newAggregator(config, logger)
	if err != nil {
		logger.Fatal("building the aggregator", zap.Error(err))
	}

	logger.Info("starting the search",
		zap.Strings("skills", req.Skills),
		zap.String("country", req.Country),
		zap.Int("min_salary", req.MinSalary),
	)

	result := agg.Search(ctx, req)
	renderPage(result, req.Page)

	if autoExit, _ := cmd.Flags().GetBool("auto-exit"); autoExit {
		return
	}

	for {
		if err := promptAction(ctx, agg, req, &result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func searchRequest(cmd *cobra.Command, config *Config) *jobs.SearchRequest {
	req := *config.Search

	if skills, _ := cmd.Flags().GetStringSlice("skills"); len(skills) > 0 {
		req.Skills = skills
	}
	if cmd.Flags().Changed("country") {
		req.Country, _ = cmd.Flags().GetString("country")
	}
	if cmd.Flags().Changed("min-salary") {
		req.MinSalary, _ = cmd.Flags().GetInt("min-salary")
	}
	if page, _ := cmd.Flags().GetInt("page"); page > 0 {
		req.Page = page
	}
	if req.Page < 1 {
		req.Page = 1
	}

	return &req
}

func promptAction(ctx context.Context, agg *aggregator.Aggregator, req *jobs.SearchRequest, result **jobs.SearchResult) error {
	prompt := promptui.Select{
		Label: "Proceed?",
		Items: []string{PromptNextPage, PromptPreviousPage, PromptDumpToFile, PromptExit},
	}

	_, action, err := prompt.Run()
	if err != nil {
		return err
	}

	switch action {
	case PromptNextPage:
		if req.Page >= (*result).TotalPages {
			fmt.Println("already on the last page")
			return nil
		}
		req.Page++
	case PromptPreviousPage:
		if req.Page <= 1 {
			fmt.Println("already on the first page")
			return nil
		}
		req.Page--
	case PromptDumpToFile:
		page := &jobs.Postings{Items: (*result).Jobs}
		filename, err := page.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		fmt.Printf("dumped current page to %s\n", filename)
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}

	*result = agg.Search(ctx, req)
	renderPage(*result, req.Page)
	return nil
}

func renderPage(result *jobs.SearchResult, page int) {
	if len(result.Jobs) == 0 {
		fmt.Println("no matching jobs found")
		return
	}

	fmt.Printf("page %d of %d\n", page, result.TotalPages)
	for _, job := range result.Jobs {
		salary := job.Salary
		if salary == "" {
			salary = "Not provided"
		}
		fmt.Printf("[%3d%%] %s — %s (%s) [%s] salary: %s\n       %s\n",
			job.MatchPercent, job.Title, job.Company, job.Location, job.Source, salary, job.Link,
		)
	}
}
