package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/innerlens/innerlens/internal/itembank"
	"github.com/innerlens/innerlens/internal/paging"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Show item bank integrity and statistics",
	Run: func(cmd *cobra.Command, args []string) {
		// Reaching this point means the bank passed load-time
		// validation; a corrupt bank panics at startup.
		fmt.Printf("trait items: %d (%d groups of %d)\n",
			len(itembank.TraitItems()), itembank.GroupCount, itembank.TraitGroupSize)
		fmt.Printf("state items: %d (%d levels of %d)\n",
			len(itembank.StateItems()), itembank.GroupCount, itembank.StateGroupSize)
		fmt.Printf("pages: %d (%d trait + %d state per page)\n\n",
			paging.TotalPages, paging.TraitPerPage, paging.StatePerPage)

		fmt.Println("trait groups:")
		for _, g := range itembank.TraitGroups() {
			fmt.Printf("  %-16s %2d items (%d reversed)\n",
				g, itembank.TraitGroupSize, reversedCount(itembank.FamilyTrait, g))
		}
		fmt.Println("state levels:")
		for _, g := range itembank.StateGroups() {
			fmt.Printf("  %2d %-14s %2d items (%d reversed)\n",
				itembank.StateLevel(g), g, itembank.StateGroupSize, reversedCount(itembank.FamilyState, g))
		}
	},
}

func reversedCount(family itembank.Family, group string) int {
	n := 0
	for _, it := range itembank.GroupItems(family, group) {
		if it.Reversed {
			n++
		}
	}
	return n
}
