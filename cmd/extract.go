package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastapply/fastapply/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract a structured profile from a resume file (pdf, docx or txt)",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		extractProfile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func extractProfile(path string) {
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading resume file", zap.String("path", path), zap.Error(err))
	}

	text, err := extract.Text(extract.Document{Name: path, Data: data})
	if err != nil {
		logger.Fatal("extracting text", zap.String("path", path), zap.Error(err))
	}

	result := newProfileExtractor(config).Extract(text)

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("encoding profile", zap.Error(err))
	}

	fmt.Println(string(pretty))
}
