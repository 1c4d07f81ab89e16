package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/domain/nurse"
)

func nursesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nurses",
		Aliases: []string{"enfermeras"},
		Short:   "Manage nurses",
	}
	cmd.AddCommand(nursesListCmd(a))
	cmd.AddCommand(nursesViewCmd(a))
	cmd.AddCommand(nursesCreateCmd(a))
	cmd.AddCommand(nursesUpdateCmd(a))
	cmd.AddCommand(nursesDeleteCmd(a))
	return cmd
}

func nursesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all nurses",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.nurses.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, n := range list {
				rows = append(rows, []string{
					strconv.Itoa(n.ID), n.FullName(), n.Telefono, n.CorreoElectronico,
				})
			}
			printTable(cmd, []string{"ID", "NAME", "PHONE", "EMAIL"}, rows)
			return nil
		},
	}
}

func nursesViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one nurse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			n, ok := a.nurses.Cached(id)
			if !ok {
				n, err = a.nurses.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			printDetail(cmd, [][2]string{
				{"id", strconv.Itoa(n.ID)},
				{"name", n.FullName()},
				{"phone", n.Telefono},
				{"email", n.CorreoElectronico},
				{"user id", strconv.Itoa(n.UsuarioID)},
			})
			return nil
		},
	}
}

func nurseFlags(cmd *cobra.Command) {
	cmd.Flags().String("nombre", "", "First name")
	cmd.Flags().String("apellido", "", "Last name")
	cmd.Flags().String("telefono", "", "Phone number")
	cmd.Flags().String("correo", "", "Email address")
	cmd.Flags().Int("usuario", 0, "Linked account id")
}

func applyNurseFlags(cmd *cobra.Command, f *nurse.Form) {
	setString(cmd, "nombre", &f.Nombre)
	setString(cmd, "apellido", &f.Apellido)
	setString(cmd, "telefono", &f.Telefono)
	setString(cmd, "correo", &f.CorreoElectronico)
	setInt(cmd, "usuario", &f.UsuarioID)
}

func nursesCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new nurse",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f nurse.Form
			applyNurseFlags(cmd, &f)
			if err := f.Validate(); err != nil {
				return err
			}
			n, err := a.nurses.Create(cmd.Context(), f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created nurse %d\n", n.ID)
			return nil
		},
	}
	nurseFlags(cmd)
	return cmd
}

func nursesUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a nurse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			current, err := a.nurses.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			f := nurse.FormFrom(current)
			applyNurseFlags(cmd, &f)
			if err := f.Validate(); err != nil {
				return err
			}
			msg, err := a.nurses.Update(cmd.Context(), id, f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
	nurseFlags(cmd)
	return cmd
}

func nursesDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a nurse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			ok, err := confirmDelete(cmd, "nurse", id)
			if err != nil || !ok {
				return err
			}
			msg, err := a.nurses.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}
