/*
Copyright © 2025 hitesh0303
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hitesh0303/union-coders/config"
	"github.com/hitesh0303/union-coders/service"
	"github.com/hitesh0303/union-coders/types"
	"github.com/hitesh0303/union-coders/utils"
)

// simplifyCmd rewrites a local document without running the server.
var simplifyCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Simplify a local document",
	Long:  `Reads a PDF, DOCX, or text file and prints its plain-language rewrite`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		outPath, _ := cmd.Flags().GetString("output")
		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer logger.Sync()

		content, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", filePath, err)
		}

		documentService := service.NewDocumentService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.Simplifier.MaxChunkSize,
			SubChunkSize: cfg.Simplifier.SubChunkSize,
		})
		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}
		simplifyService := service.NewSimplifyService(aiService, documentService, service.SimplifierOptions{
			MaxAttempts:       cfg.Simplifier.MaxAttempts,
			RequestsPerSecond: cfg.Simplifier.RequestsPerSecond,
		}, logger)

		doc, err := simplifyService.SimplifyDocument(context.Background(), content, filepath.Base(filePath), nil)
		if err != nil {
			log.Fatalf("Failed to simplify document: %v", err)
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(doc.Simplified), 0644); err != nil {
				log.Fatalf("Failed to write %s: %v", outPath, err)
			}
			return
		}
		fmt.Println(doc.Simplified)
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	simplifyCmd.Flags().StringP("file", "f", "", "document to simplify")
	simplifyCmd.Flags().StringP("output", "o", "", "write the rewrite to this file instead of stdout")
}
