// contactctl submits a contact message through a deployed relay, driving
// the same form controller the site uses.
package main

import (
	"fmt"
	"os"

	"contact-relay-backend/pkg/formclient"
	"contact-relay-backend/pkg/validation"

	"github.com/spf13/cobra"
)

var (
	endpoint string
	to       string
	email    string
	phone    string
	message  string
)

var rootCmd = &cobra.Command{
	Use:           "contactctl",
	Short:         "Submit a contact message through the relay service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if phone != "" && !validation.ValidPhone(phone) {
			fmt.Fprintln(os.Stderr, "warning: phone number looks malformed, sending anyway")
		}

		form := formclient.New(endpoint, to)
		form.UpdateField("email", email)
		form.UpdateField("phone", phone)
		form.UpdateField("message", message)

		if err := form.Submit(cmd.Context()); err != nil {
			fieldErrs := form.FieldErrors()
			if fieldErrs.Email != "" {
				fmt.Fprintln(os.Stderr, "email:", fieldErrs.Email)
			}
			if fieldErrs.Message != "" {
				fmt.Fprintln(os.Stderr, "message:", fieldErrs.Message)
			}
			return err
		}

		fmt.Println("Message sent successfully!")
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080/v1/send-email", "relay endpoint URL")
	rootCmd.Flags().StringVar(&to, "to", "jon@howapped.com", "destination inbox")
	rootCmd.Flags().StringVar(&email, "email", "", "your email address")
	rootCmd.Flags().StringVar(&phone, "phone", "", "your phone number (optional)")
	rootCmd.Flags().StringVar(&message, "message", "", "message body")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
