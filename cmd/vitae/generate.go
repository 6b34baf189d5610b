package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vitae-backend/internal/bootstrap"
	"vitae-backend/internal/extract"
	"vitae-backend/internal/generate"
	"vitae-backend/internal/llm"
	"vitae-backend/internal/shared/config"
)

func defaultCompleter(ctx context.Context) (llm.Completer, error) {
	return bootstrap.BuildCompleter(ctx, config.Load())
}

func newGenerateCmd(newCompleter completerFactory) *cobra.Command {
	var resumePath, jdPath, outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a cover letter and CV feedback",
		Example: `  vitae generate --resume cv.pdf --jd job.txt
  vitae generate --resume cv.docx --jd job.txt --out result.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			resumeDoc, err := loadDocument(resumePath)
			if err != nil {
				return err
			}
			jdDoc, err := loadDocument(jdPath)
			if err != nil {
				return err
			}
			jobDescription, err := extract.Extract(ctx, jdDoc)
			if err != nil {
				return fmt.Errorf("job description: %w", err)
			}

			completer, err := newCompleter(ctx)
			if err != nil {
				return err
			}
			content, err := generate.NewService(completer).GenerateFromDocument(ctx, resumeDoc, jobDescription)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				return err
			}
			if outPath != "" {
				return os.WriteFile(outPath, append(data, '\n'), 0o600)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVar(&resumePath, "resume", "", "Résumé file (PDF, DOCX or TXT)")
	cmd.Flags().StringVar(&jdPath, "jd", "", "Job description file")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the JSON result to this path instead of stdout")
	_ = cmd.MarkFlagRequired("resume")
	_ = cmd.MarkFlagRequired("jd")
	return cmd
}
