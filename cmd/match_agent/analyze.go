package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hirepath/match-engine/internal/config"
	"github.com/hirepath/match-engine/internal/engine"
	"github.com/hirepath/match-engine/internal/extraction"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score one applicant against one job posting",
	Long:  `Reads an applicant profile and a job posting from JSON files, runs the match analysis, and prints the result as JSON to stdout.`,
	RunE:  runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeApplicant   string
	analyzeJob         string
	analyzeCoverLetter string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCmd.Flags().StringVarP(&analyzeApplicant, "applicant", "a", "", "Path to applicant profile JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting JSON file")
	analyzeCmd.Flags().StringVar(&analyzeCoverLetter, "cover-letter", "", "Path to cover letter text file (optional)")

	_ = analyzeCmd.MarkFlagRequired("applicant")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(analyzeConfigPath)
	if err != nil {
		return err
	}

	var account extraction.AccountRecord
	if err := readJSONFile(analyzeApplicant, &account); err != nil {
		return fmt.Errorf("failed to read applicant file: %w", err)
	}

	var posting extraction.JobPostingRecord
	if err := readJSONFile(analyzeJob, &posting); err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	coverLetter := ""
	if analyzeCoverLetter != "" {
		data, err := os.ReadFile(analyzeCoverLetter)
		if err != nil {
			return fmt.Errorf("failed to read cover letter file: %w", err)
		}
		coverLetter = string(data)
	}

	eng, log, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := eng.Close(); err != nil {
			log.Warn("engine close failed")
		}
	}()

	profile := extraction.BuildProfile(account)
	job := extraction.BuildRequirements(posting)

	result, err := eng.Analyze(ctx, &profile, &job, coverLetter)
	if err != nil {
		return err
	}

	out := struct {
		MatchQuality string `json:"match_quality"`
		Result       any    `json:"result"`
	}{
		MatchQuality: engine.MatchQuality(result.MatchScore),
		Result:       result,
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
