package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func newCertificateCmd(c *cli) *cobra.Command {
	certCmd := &cobra.Command{
		Use:     "certificate",
		Aliases: []string{"cert"},
		Short:   "Issue or list completion certificates",
	}

	certCmd.AddCommand(&cobra.Command{
		Use:   "issue <category>",
		Short: "Issue a certificate for a completed quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				cert, unlocked, err := e.IssueCertificate(ctx, c.cfg.User, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, theme.Title.Render("📜 Certificate issued"))
				fmt.Fprintf(out, "Category: %s\nScore: %.0f%%\nBadges: %d\nDate: %s\nCode: %s\n",
					cert.Category, cert.ScorePercent, cert.BadgesEarned, cert.Date.Format("2006-01-02"), cert.Code)
				printBadges(out, unlocked)
				return nil
			})
		},
	})

	certCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your certificates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				certs, err := e.Certificates.List(ctx, c.cfg.User)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(certs) == 0 {
					fmt.Fprintln(out, theme.Subtitle.Render("No certificates yet."))
					return nil
				}
				for _, cert := range certs {
					fmt.Fprintf(out, "%s  %-12s %3.0f%%  %s\n",
						cert.Date.Format("2006-01-02"), cert.Category, cert.ScorePercent, cert.Code)
				}
				return nil
			})
		},
	})
	return certCmd
}
