package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
	"github.com/Surfer12/microarch-lab-conversions/internal/store"
)

var pathwayCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Manage named learning pathways",
}

var pathwayCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a pathway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		levelName, _ := cmd.Flags().GetString("level")

		level, err := challenge.ParseLevel(levelName)
		if err != nil {
			return err
		}

		return withPathwayRepo(cmd, func(repo store.PathwayRepo) error {
			p, err := repo.Create(cmd.Context(), args[0], description, level.String())
			if err != nil {
				return err
			}
			fmt.Printf("Created pathway %q at %s\n", p.Name, p.Level)
			return nil
		})
	},
}

var pathwayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pathways",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPathwayRepo(cmd, func(repo store.PathwayRepo) error {
			records, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No pathways yet. Create one with: convlab pathway create NAME")
				return nil
			}
			for _, p := range records {
				fmt.Printf("%-20s %-12s %s\n", p.Name, p.Level, p.Description)
			}
			return nil
		})
	},
}

var pathwayViewCmd = &cobra.Command{
	Use:   "view NAME",
	Short: "Show one pathway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPathwayRepo(cmd, func(repo store.PathwayRepo) error {
			p, err := repo.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Name:        %s\n", p.Name)
			fmt.Printf("Level:       %s\n", p.Level)
			fmt.Printf("Description: %s\n", p.Description)
			fmt.Printf("Created:     %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Printf("Updated:     %s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
			return nil
		})
	},
}

var pathwayEditCmd = &cobra.Command{
	Use:   "edit NAME",
	Short: "Edit a pathway's description or level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var update store.PathwayUpdate
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			update.Description = &description
		}
		if cmd.Flags().Changed("level") {
			levelName, _ := cmd.Flags().GetString("level")
			level, err := challenge.ParseLevel(levelName)
			if err != nil {
				return err
			}
			name := level.String()
			update.Level = &name
		}
		if update.Description == nil && update.Level == nil {
			return fmt.Errorf("nothing to edit: pass --description or --level")
		}

		return withPathwayRepo(cmd, func(repo store.PathwayRepo) error {
			p, err := repo.Edit(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			fmt.Printf("Updated pathway %q\n", p.Name)
			return nil
		})
	},
}

var pathwayDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a pathway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPathwayRepo(cmd, func(repo store.PathwayRepo) error {
			if err := repo.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted pathway %q\n", args[0])
			return nil
		})
	},
}

// withPathwayRepo opens the store and runs fn with its pathway repo.
func withPathwayRepo(cmd *cobra.Command, fn func(store.PathwayRepo) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	return fn(st.PathwayRepo())
}

func init() {
	pathwayCreateCmd.Flags().String("description", "", "Free-form description")
	pathwayCreateCmd.Flags().String("level", "BEGINNER", "Starting difficulty level")
	pathwayEditCmd.Flags().String("description", "", "New description")
	pathwayEditCmd.Flags().String("level", "", "New difficulty level")

	pathwayCmd.AddCommand(pathwayCreateCmd)
	pathwayCmd.AddCommand(pathwayListCmd)
	pathwayCmd.AddCommand(pathwayViewCmd)
	pathwayCmd.AddCommand(pathwayEditCmd)
	pathwayCmd.AddCommand(pathwayDeleteCmd)
}
