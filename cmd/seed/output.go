package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/meatkonnex/backend/internal/infrastructure/persistence"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	cellStyle    = lipgloss.NewStyle().Width(24)
	numberStyle  = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
)

func successf(format string, args ...any) {
	fmt.Print(successStyle.Render("✓ "))
	fmt.Printf(format+"\n", args...)
}

func warningf(format string, args ...any) {
	fmt.Print(warningStyle.Render("⚠ "))
	fmt.Printf(format+"\n", args...)
}

func errorf(format string, args ...any) {
	fmt.Print(errorStyle.Render("✗ "))
	fmt.Printf(format+"\n", args...)
}

// printCatalog renders every animal with its parts as aligned columns
func printCatalog(ctx context.Context, db *persistence.Database) error {
	animals, err := persistence.NewGormAnimalRepository(db.DB).FindAllWithParts(ctx)
	if err != nil {
		return err
	}
	if len(animals) == 0 {
		warningf("No animals found, run seed without -view first")
		return nil
	}

	for _, animal := range animals {
		fmt.Println()
		fmt.Println(primaryStyle.Render(fmt.Sprintf("%s  #%d", animal.Name, animal.ID)))
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%s kg, purchased for J$%s on %s",
			animal.TotalWeightKg.String(), animal.PurchasePriceJMD.StringFixed(2),
			animal.DatePurchased.Format("2006-01-02"))))

		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Render(mutedStyle.Render("PART")),
			numberStyle.Render(mutedStyle.Render("WEIGHT LB")),
			numberStyle.Render(mutedStyle.Render("J$/LB")),
		))
		for _, part := range animal.MeatParts {
			fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top,
				cellStyle.Render(part.PartName),
				numberStyle.Render(part.WeightLb.String()),
				numberStyle.Render(part.PricePerLbJMD.StringFixed(2)),
			))
		}
	}
	fmt.Println()
	return nil
}
