package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cellar/internal/common"
	"cellar/internal/sommelier"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask Dr. Vinny a one-off question",
		Long: `Send a single question to the AI sommelier. The full catalog is
included as context, so questions can reference specific wines.

Examples:
  cellar ask what pairs well with duck
  cellar ask "which of the Italian reds is the best value?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := sommelierConfig()
	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured: set llm.api_key or CELLAR_LLM_API_KEY")
	}
	client, err := sommelier.NewClient(ctx, cfg)
	if err != nil {
		return err
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store, err := loadCatalog(ctx, db)
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	prompt := sommelier.BuildPrompt(store.Wines(), nil, question)

	reply, err := client.Generate(ctx, prompt)
	return printReply(reply, err)
}

// printReply prints the sommelier reply, substituting the fixed apology on
// failure. The cause is logged, never printed.
func printReply(reply string, err error) error {
	if err != nil {
		common.LogError(err, "Sommelier request failed", nil)
		fmt.Println(sommelier.FallbackReply)
		return common.NewUserError("sommelier request failed", nil)
	}
	fmt.Println(reply)
	return nil
}
