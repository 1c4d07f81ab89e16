package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	authdomain "github.com/clinica/clinica/internal/domain/auth"
)

func loginCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			reader := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "email: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			user, err := a.auth.Login(cmd.Context(), authdomain.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", user.Nombre, user.Rol)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.auth.Logout()
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.sess.User()
			if user == nil {
				return fmt.Errorf("not logged in")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s\n", user.Nombre, user.Email, user.Rol)
			if exp, ok := a.sess.ExpiresAt(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "session expires %s\n", exp.Format(time.RFC3339))
			}
			return nil
		},
	}
}
