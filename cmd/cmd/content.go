package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"contentforge/internal/account"
	"contentforge/internal/config"
	"contentforge/internal/logger"
	"contentforge/internal/store"
)

// defaultUserID identifies content created from the CLI, which has no
// sign-in. The auth seam supplies real ids when one is wired.
const defaultUserID = "local"

func openStore() (*store.Store, error) {
	return store.NewStore(config.Get().App.DataDir)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved content",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore()
		if err != nil {
			logger.Error("Failed to open store", err)
			os.Exit(1)
		}
		defer s.Close()

		records, err := s.ListRecords(defaultUserID, limit)
		if err != nil {
			logger.Error("Failed to list content", err)
			os.Exit(1)
		}

		if len(records) == 0 {
			fmt.Println("No saved content.")
			return
		}
		for _, r := range records {
			fmt.Printf("%s  %-18s %-30s %s\n",
				r.ID, r.ContentType, truncate(r.Title, 30), r.CreatedAt.Format("2006-01-02"))
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a saved piece of content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			logger.Error("Failed to open store", err)
			os.Exit(1)
		}
		defer s.Close()

		record, err := s.GetRecord(args[0])
		if err != nil {
			logger.Error("Failed to load content", err)
			os.Exit(1)
		}

		fmt.Printf("# %s\n\n", record.Title)
		if record.MetaDescription != "" {
			fmt.Printf("Meta: %s\n\n", record.MetaDescription)
		}
		fmt.Println(record.Content)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved piece of content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			logger.Error("Failed to open store", err)
			os.Exit(1)
		}
		defer s.Close()

		if err := s.DeleteRecord(args[0]); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "No content with id %s\n", args[0])
			} else {
				logger.Error("Failed to delete content", err)
			}
			os.Exit(1)
		}
		fmt.Println("Deleted.")
	},
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show plan usage for the current month",
	Run: func(cmd *cobra.Command, args []string) {
		plan, _ := cmd.Flags().GetString("plan")

		s, err := openStore()
		if err != nil {
			logger.Error("Failed to open store", err)
			os.Exit(1)
		}
		defer s.Close()

		tracker := account.NewUsageTracker(s)
		user := account.User{ID: defaultUserID, Plan: account.PlanID(plan)}
		usage, err := tracker.Usage(user, time.Now())
		if err != nil {
			logger.Error("Failed to compute usage", err)
			os.Exit(1)
		}

		fmt.Printf("Plan: %s ($%.0f/mo)\n", usage.Plan.Name, usage.Plan.PriceUSD)
		fmt.Printf("Used %d of %d pieces since %s (%d remaining)\n",
			usage.Used, usage.Limit, usage.PeriodStart.Format("2006-01-02"), usage.Remaining())
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	rootCmd.AddCommand(listCmd, showCmd, deleteCmd, usageCmd)
	listCmd.Flags().Int("limit", 20, "maximum records to list")
	usageCmd.Flags().String("plan", string(account.PlanFree), "plan id (free, pro, business)")
}
