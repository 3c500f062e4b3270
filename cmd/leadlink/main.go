package main

import (
	"errors"
	"fmt"
	"os"

	"retailnexa_site/config"
	"retailnexa_site/models"
	"retailnexa_site/services"
	"retailnexa_site/services/i18n"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	form := models.NewLeadForm()
	var (
		recipient string
		show      bool
	)

	cmd := &cobra.Command{
		Use:   "leadlink",
		Short: "Build the lead form mailto link from the command line",
		Long: `leadlink builds the same mailto: URI the website's lead form opens,
so sales staff and scripts can prepare a demo or early-access request
without a browser.

Examples:
  leadlink --name "Jane Doe" --email jane@store.com
  leadlink --name "Jane Doe" --email jane@store.com --type "Early Access" --business "Corner Market" --show`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := i18n.Load(); err != nil {
				return fmt.Errorf("failed to load messages: %w", err)
			}

			submission, err := services.SubmitLead(services.NormalizeLeadForm(form), recipient)
			if err != nil {
				key, _ := services.LeadErrorKey(err)
				return errors.New(i18n.Translate(i18n.DefaultLang, key))
			}

			out := cmd.OutOrStdout()
			if show {
				fmt.Fprintf(out, "Subject: %s\n\n%s\n\n", submission.Subject, submission.Body)
			}
			fmt.Fprintln(out, submission.MailtoHref)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&form.FullName, "name", "n", "", "Full name (required)")
	flags.StringVarP(&form.Email, "email", "e", "", "Work email (required)")
	flags.StringVarP(&form.BusinessName, "business", "b", "", "Business name")
	flags.StringVarP(&form.Phone, "phone", "p", "", "Phone")
	flags.StringVarP(&form.Locations, "locations", "l", models.DefaultLocations, "Number of locations (1, 2-3, 4-10, 11+)")
	flags.StringVar(&form.POS, "pos", "", "POS system")
	flags.StringVarP(&form.RequestType, "type", "t", models.RequestTypeDemo, "Request type (Demo, Early Access)")
	flags.StringVarP(&form.Message, "message", "m", "", "What to automate")
	flags.StringVar(&recipient, "to", config.DefaultContactEmail, "Recipient address")
	flags.BoolVar(&show, "show", false, "Also print the subject and body")

	return cmd
}
