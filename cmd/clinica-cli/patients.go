package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/domain/patient"
	"github.com/clinica/clinica/internal/domain/shape"
)

func patientsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patients",
		Aliases: []string{"pacientes"},
		Short:   "Manage patients",
	}
	cmd.AddCommand(patientsListCmd(a))
	cmd.AddCommand(patientsViewCmd(a))
	cmd.AddCommand(patientsCreateCmd(a))
	cmd.AddCommand(patientsUpdateCmd(a))
	cmd.AddCommand(patientsDeleteCmd(a))
	return cmd
}

func patientsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.patients.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, p := range list {
				rows = append(rows, []string{
					strconv.Itoa(p.ID), p.FullName(), p.FechaNacimiento,
					shape.Deref(p.Telefono), shape.Deref(p.CorreoElectronico),
				})
			}
			printTable(cmd, []string{"ID", "NAME", "BORN", "PHONE", "EMAIL"}, rows)
			return nil
		},
	}
}

func patientsViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			// Detail views open from cached list rows when possible.
			p, ok := a.patients.Cached(id)
			if !ok {
				p, err = a.patients.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			printDetail(cmd, [][2]string{
				{"id", strconv.Itoa(p.ID)},
				{"name", p.FullName()},
				{"born", p.FechaNacimiento},
				{"address", shape.Deref(p.Direccion)},
				{"phone", shape.Deref(p.Telefono)},
				{"email", shape.Deref(p.CorreoElectronico)},
				{"history", shape.Deref(p.HistoriaMedica)},
			})
			return nil
		},
	}
}

func patientFlags(cmd *cobra.Command) {
	cmd.Flags().String("nombre", "", "First name")
	cmd.Flags().String("apellido", "", "Last name")
	cmd.Flags().String("fecha-nacimiento", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().String("direccion", "", "Address")
	cmd.Flags().String("telefono", "", "Phone number")
	cmd.Flags().String("correo", "", "Email address")
	cmd.Flags().String("historia", "", "Medical history")
}

// applyPatientFlags copies changed flags onto the form.
func applyPatientFlags(cmd *cobra.Command, f *patient.Form) error {
	setString(cmd, "nombre", &f.Nombre)
	setString(cmd, "apellido", &f.Apellido)
	setString(cmd, "direccion", &f.Direccion)
	setString(cmd, "telefono", &f.Telefono)
	setString(cmd, "correo", &f.CorreoElectronico)
	setString(cmd, "historia", &f.HistoriaMedica)
	if cmd.Flags().Changed("fecha-nacimiento") {
		raw, _ := cmd.Flags().GetString("fecha-nacimiento")
		born, err := shape.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("invalid --fecha-nacimiento: %w", err)
		}
		f.FechaNacimiento = born
	}
	return nil
}

func patientsCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f patient.Form
			if err := applyPatientFlags(cmd, &f); err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return err
			}
			p, err := a.patients.Create(cmd.Context(), f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created patient %d\n", p.ID)
			return nil
		},
	}
	patientFlags(cmd)
	return cmd
}

func patientsUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			// Prefill from the current record so unset flags keep their values.
			current, err := a.patients.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			f, err := patient.FormFrom(current)
			if err != nil {
				return err
			}
			if err := applyPatientFlags(cmd, &f); err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return err
			}
			msg, err := a.patients.Update(cmd.Context(), id, f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
	patientFlags(cmd)
	return cmd
}

func patientsDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			ok, err := confirmDelete(cmd, "patient", id)
			if err != nil || !ok {
				return err
			}
			msg, err := a.patients.Delete(cmd.Context(), id)
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
