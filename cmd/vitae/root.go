package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vitae-backend/internal/extract"
	"vitae-backend/internal/llm"
)

// completerFactory builds the completion backend; tests replace it.
type completerFactory func(ctx context.Context) (llm.Completer, error)

func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultCompleter)
}

func newRootCmdWith(newCompleter completerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vitae",
		Short: "Draft a cover letter and CV feedback from a résumé and a job description",
		Long: `vitae extracts text from PDF, DOCX or plain-text résumés and asks a
completion model for a tailored cover letter plus improvement suggestions.

Provider and model come from LLM_PROVIDER and LLM_MODEL; the API key from
OPENAI_API_KEY or GOOGLE_API_KEY.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newExtractCmd(), newGenerateCmd(newCompleter))
	return rootCmd
}

// loadDocument reads path and resolves its MIME type from the extension, sniffing when unknown.
func loadDocument(path string) (extract.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	mimeType := ""
	if kind, err := extract.KindFromFileName(path); err == nil {
		mimeType = kind.MimeType()
	} else {
		mimeType = extract.Detect(data)
	}
	return extract.Document{
		Data:     data,
		MimeType: mimeType,
		FileName: filepath.Base(path),
	}, nil
}
