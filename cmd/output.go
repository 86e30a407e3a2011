package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/voltiz/internal/badges"
	"github.com/abhisek/voltiz/internal/certificate"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func printBadges(w io.Writer, unlocked []badges.Badge) {
	for _, b := range unlocked {
		line := fmt.Sprintf("%s Badge unlocked: %s (+%d)", b.Icon, b.Name, b.Points)
		fmt.Fprintln(w, theme.RarityColor(string(b.Rarity)).Render(line))
	}
}

func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, theme.Incorrect.Render(msg))
}

func errUnknownCategory(category string) error {
	return fmt.Errorf("%w: %q", certificate.ErrUnknownCategory, category)
}
