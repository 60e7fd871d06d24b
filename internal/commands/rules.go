package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splitledger-dev/splitledger/internal/model"
)

func newRulesCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage per-category split rules",
	}
	cmd.AddCommand(newRulesListCommand(configPath))
	cmd.AddCommand(newRulesSetCommand(configPath))
	cmd.AddCommand(newRulesDeleteCommand(configPath))
	return cmd
}

func newRulesListCommand(configPath *string) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's split rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			rules, err := st.ListRules(cmd.Context(), user)
			if err != nil {
				return err
			}
			if len(rules) == 0 {
				fmt.Println("No split rules.")
				return nil
			}
			for _, r := range rules {
				need := "want"
				if r.Need {
					need = "need"
				}
				fmt.Printf("%-24s %3d%% %s\n", r.Category, r.SplitPercent, need)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user ID (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newRulesSetCommand(configPath *string) *cobra.Command {
	var user, category string
	var percent int
	var need bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a split rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			rule := model.SplitRule{
				UserID:       user,
				Category:     category,
				Need:         need,
				SplitPercent: percent,
			}
			if err := st.PutRule(cmd.Context(), rule); err != nil {
				return err
			}
			fmt.Printf("Rule set: %s/%s -> %d%%\n", user, category, percent)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user ID (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&category, "category", "", "transaction category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().IntVar(&percent, "percent", 0, "partner's share, 0-100")
	cmd.Flags().BoolVar(&need, "need", false, "mark the category a necessity")
	return cmd
}

func newRulesDeleteCommand(configPath *string) *cobra.Command {
	var user, category string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a split rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteRule(cmd.Context(), user, category); err != nil {
				return err
			}
			fmt.Printf("Rule deleted: %s/%s\n", user, category)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user ID (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&category, "category", "", "transaction category (required)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}
