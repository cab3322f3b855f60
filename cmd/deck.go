package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devika/pmquest/internal/catalog"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Work with deck files",
}

var deckCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a deck file without installing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := catalog.LoadDeckFile(args[0], version)
		if err != nil {
			return err
		}
		fmt.Printf("OK: %s (%q, %d cards)\n", deck.ID, deck.Title, len(deck.CardIDs))
		return nil
	},
}

func init() {
	deckCmd.AddCommand(deckCheckCmd)
}
