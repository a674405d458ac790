package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mailtriage/mailtriage/internal/classify"
	"github.com/mailtriage/mailtriage/internal/config"
	"github.com/mailtriage/mailtriage/internal/email"
	"github.com/mailtriage/mailtriage/internal/extract"
	"github.com/mailtriage/mailtriage/internal/reply"
	"github.com/mailtriage/mailtriage/internal/web"
)

var cfgFile string

func resolveConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig falls back to defaults when no config file exists, so
// the CLI works out of the box.
func loadConfig() (*config.Config, error) {
	path := resolveConfigPath()
	if _, err := os.Stat(path); err != nil {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "mailtriage",
		Short: "Mailtriage - Rule-based email classification and auto-reply",
		Long: `Mailtriage classifies emails as productive or unproductive using a
deterministic keyword and pattern scoring engine, and suggests an
automatic reply matched to the email's subcategory and the
classification confidence.

It works on Portuguese and English text and accepts plain text, .txt,
.pdf and .eml inputs.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mailtriage/config.yaml)")

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(modelsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create a configuration file with default server and limit settings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the classification HTTP API",
		Long: `Start the JSON API exposing /analyze, /analyze/batch, /health,
/models and /templates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides config)")

	return cmd
}

func analyzeCmd() *cobra.Command {
	var (
		file      string
		replyTo   string
		urgency   string
		formality string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Classify one email and suggest a reply",
		Long: `Classify email text given as an argument or read from a file
(.txt, .pdf or .eml) and print the category, confidence and a
suggested automatic reply.

With --reply-to the suggested reply is sent through the configured
SMTP server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(strings.Join(args, " "), file, replyTo, urgency, formality, asJSON)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the email from a file instead of arguments")
	cmd.Flags().StringVar(&replyTo, "reply-to", "", "Send the generated reply to this address via SMTP")
	cmd.Flags().StringVar(&urgency, "urgency", "", "Context hint: high forces an urgent reply")
	cmd.Flags().StringVar(&formality, "formality", "", "Context hint: high forces a formal reply")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")

	return cmd
}

func batchCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Classify multiple emails from a file",
		Long: `Classify several emails in one run. The input file is either a JSON
array of strings or plain text with one email per block, blocks
separated by a line containing only "---".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "File with emails separated by --- lines")
	cmd.MarkFlagRequired("file")

	return cmd
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Show classifier model information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := classify.New().ModelInfo()
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode model info: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func runInit() error {
	path := resolveConfigPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✅ Configuration saved to: %s\n", path)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Review and edit the config file if needed")
	fmt.Println("  2. Run 'mailtriage serve' to start the API")
	fmt.Println("  3. Run 'mailtriage analyze \"...\"' to classify from the terminal")

	return nil
}

func runServe(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	logger := newLogger(cfg)
	server := web.NewServer(cfg, classify.New(), reply.NewSelector(), logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	return server.Start()
}

func runAnalyze(text, file, replyTo, urgency, formality string, asJSON bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	content := strings.TrimSpace(text)
	if file != "" {
		if !extract.Allowed(file) {
			return fmt.Errorf("unsupported file type: %s (use .txt, .pdf or .eml)", file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		content, err = extract.Text(file, data)
		if err != nil {
			return fmt.Errorf("failed to extract text: %w", err)
		}
	}
	if content == "" {
		return fmt.Errorf("provide email text as an argument or use --file")
	}

	classifier := classify.New()
	selector := reply.NewSelector()

	result := classifier.Classify(content)

	hints := map[string]string{}
	if urgency != "" {
		hints["urgency"] = urgency
	}
	if formality != "" {
		hints["formality"] = formality
	}

	var response string
	if len(hints) > 0 {
		response = selector.GenerateCustom(result.Category, hints)
	} else {
		response = selector.Generate(result.Category, content, result.Confidence)
	}

	if asJSON {
		out, err := json.MarshalIndent(map[string]any{
			"category":   result.Category,
			"confidence": result.Confidence,
			"response":   response,
			"analysis":   result.Breakdown,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printResult(result, response)
	}

	if replyTo != "" {
		return sendReply(cfg, replyTo, response)
	}
	return nil
}

func printResult(result classify.Result, response string) {
	icon := "✅"
	if result.Category == classify.CategoryUnproductive {
		icon = "🚫"
	}

	fmt.Println("📧 Classification Result")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("%s Category:   %s\n", icon, result.Category)
	fmt.Printf("   Confidence: %.0f%%\n", result.Confidence*100)
	fmt.Printf("   Score:      %.2f\n", result.Breakdown.FinalScore)
	fmt.Printf("   Tokens:     %d\n", result.Breakdown.TokensAnalyzed)
	if result.Fallback() {
		fmt.Println("   ⚠️  Degraded result (fallback)")
	}
	fmt.Println()
	fmt.Println("💬 Suggested reply:")
	fmt.Printf("   %s\n", response)
}

func sendReply(cfg *config.Config, to, body string) error {
	if err := cfg.ValidateSMTP(); err != nil {
		return fmt.Errorf("cannot send reply: %w", err)
	}

	sender, err := email.NewSender(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := sender.Send(ctx, email.Message{
		To:      to,
		Subject: "Resposta automática",
		Body:    body,
	})
	if !result.Success {
		return fmt.Errorf("failed to send reply: %w", result.Error)
	}

	fmt.Printf("📨 Reply sent to %s\n", to)
	return nil
}

func runBatch(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	emails, err := splitEmails(data)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return fmt.Errorf("no emails found in %s", file)
	}

	classifier := classify.New()
	selector := reply.NewSelector()

	fmt.Printf("📬 Classifying %d emails...\n", len(emails))
	fmt.Println()

	productive := 0
	unproductive := 0
	for i, content := range emails {
		result := classifier.Classify(content)
		response := selector.Generate(result.Category, content, result.Confidence)

		icon := "✅"
		if result.Category == classify.CategoryUnproductive {
			icon = "🚫"
			unproductive++
		} else {
			productive++
		}

		fmt.Printf("[%d/%d] %s %s (%.0f%%)\n", i+1, len(emails), icon, result.Category, result.Confidence*100)
		fmt.Printf("      %s\n", truncateString(firstLine(content), 60))
		fmt.Printf("      💬 %s\n", truncateString(response, 70))
		fmt.Println()
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("📊 Complete: %d produtivo, %d improdutivo\n", productive, unproductive)

	return nil
}

// splitEmails reads either a JSON array of strings or text blocks
// separated by "---" lines.
func splitEmails(data []byte) ([]string, error) {
	trimmed := strings.TrimSpace(string(data))

	if strings.HasPrefix(trimmed, "[") {
		var emails []string
		if err := json.Unmarshal([]byte(trimmed), &emails); err != nil {
			return nil, fmt.Errorf("invalid JSON email list: %w", err)
		}
		return emails, nil
	}

	var emails []string
	for _, block := range strings.Split(trimmed, "\n---") {
		block = strings.TrimPrefix(strings.TrimSpace(block), "---")
		block = strings.TrimSpace(block)
		if block != "" {
			emails = append(emails, block)
		}
	}
	return emails, nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
