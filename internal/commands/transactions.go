package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/splitledger-dev/splitledger/internal/export"
	"github.com/splitledger-dev/splitledger/internal/model"
	"github.com/splitledger-dev/splitledger/internal/split"
	"github.com/splitledger-dev/splitledger/internal/store"
)

func newTransactionsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List, review and export canonical transactions",
	}
	cmd.AddCommand(newTxListCommand(configPath))
	cmd.AddCommand(newTxReviewCommand(configPath))
	cmd.AddCommand(newTxCategoriesCommand(configPath))
	cmd.AddCommand(newTxExportCommand(configPath))
	return cmd
}

func newTxListCommand(configPath *string) *cobra.Command {
	var user, status, start, end string
	var outflows bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions (pending review by default)",
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

			txs, err := st.ListTransactions(cmd.Context(), store.TransactionQuery{
				UserID:       user,
				Status:       model.ReviewStatus(status),
				OutflowsOnly: outflows,
				StartDate:    start,
				EndDate:      end,
			})
			if err != nil {
				return err
			}
			if len(txs) == 0 {
				fmt.Println("No transactions.")
				return nil
			}
			for _, tx := range txs {
				amount := "-"
				if tx.Amount != nil {
					amount = tx.Amount.StringFixed(2)
				}
				fmt.Printf("%s  %-10s %10s  %-24s %-12s %s\n",
					tx.ContentHash[:12], tx.TransactionDate, amount,
					truncate(tx.Description, 24), tx.Category, tx.ReviewStatus)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "filter by user ID")
	cmd.Flags().StringVar(&status, "status", string(model.ReviewPending), "filter by review status (pending, reviewed, or empty for all)")
	cmd.Flags().StringVar(&start, "start", "", "earliest transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "latest transaction date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&outflows, "outflows", false, "only transactions that cost money")
	return cmd
}

func newTxReviewCommand(configPath *string) *cobra.Command {
	var shared, notShared bool
	var category string

	cmd := &cobra.Command{
		Use:   "review <content-hash>",
		Short: "Record the split decision for a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if shared == notShared {
				return fmt.Errorf("exactly one of --shared or --not-shared is required")
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			tx, err := runReview(cmd.Context(), st, args[0], shared, category)
			if err != nil {
				return err
			}
			fmt.Printf("Reviewed %s: split=%s\n", tx.ContentHash[:12], tx.SplitDecided)
			return nil
		},
	}

	cmd.Flags().BoolVar(&shared, "shared", false, "the expense is shared with the partner")
	cmd.Flags().BoolVar(&notShared, "not-shared", false, "the expense is not shared")
	cmd.Flags().StringVar(&category, "category", "", "assign or change the category before deciding")
	return cmd
}

// runReview records a human split decision, recomputing the allocation when
// the category changed.
func runReview(ctx context.Context, st store.Store, contentHash string, shared bool, category string) (model.Transaction, error) {
	tx, err := st.GetTransaction(ctx, contentHash)
	if err != nil {
		return model.Transaction{}, err
	}

	if category != "" && category != tx.Category {
		// A category change invalidates the stored allocation; recompute it
		// under the user's current rules.
		tx.Category = category
		ruleRows, err := st.ListRules(ctx, tx.UserID)
		if err != nil {
			return model.Transaction{}, err
		}
		tx = split.Allocate(tx, split.NewRules(tx.UserID, ruleRows))
	}

	tx.SplitDecided = model.SplitNo
	if shared {
		tx.SplitDecided = model.SplitYes
	}
	tx.ReviewStatus = model.ReviewReviewed

	if err := st.UpdateTransaction(ctx, tx); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

func newTxCategoriesCommand(configPath *string) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories seen for a user",
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

			categories, err := st.ListCategories(cmd.Context(), user)
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Println(c)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user ID (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newTxExportCommand(configPath *string) *cobra.Command {
	var user, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
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

			txs, err := st.ListTransactions(cmd.Context(), store.TransactionQuery{UserID: user})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return export.WriteTransactions(w, txs)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "filter by user ID")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	return cmd
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
