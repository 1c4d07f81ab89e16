package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/domain/doctor"
	"github.com/clinica/clinica/internal/domain/shape"
)

func doctorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctors",
		Aliases: []string{"doctores"},
		Short:   "Manage doctors",
	}
	cmd.AddCommand(doctorsListCmd(a))
	cmd.AddCommand(doctorsViewCmd(a))
	cmd.AddCommand(doctorsCreateCmd(a))
	cmd.AddCommand(doctorsUpdateCmd(a))
	cmd.AddCommand(doctorsDeleteCmd(a))
	return cmd
}

func doctorsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.doctors.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, d := range list {
				rows = append(rows, []string{
					strconv.Itoa(d.ID), d.FullName(), d.Especialidad, d.HorarioAtencion,
				})
			}
			printTable(cmd, []string{"ID", "NAME", "SPECIALTY", "HOURS"}, rows)
			return nil
		},
	}
}

func doctorsViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			d, ok := a.doctors.Cached(id)
			if !ok {
				d, err = a.doctors.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			printDetail(cmd, [][2]string{
				{"id", strconv.Itoa(d.ID)},
				{"name", d.FullName()},
				{"specialty", d.Especialidad},
				{"hours", d.HorarioAtencion},
				{"phone", shape.Deref(d.Telefono)},
				{"email", shape.Deref(d.CorreoElectronico)},
				{"address", shape.Deref(d.Direccion)},
			})
			return nil
		},
	}
}

func doctorFlags(cmd *cobra.Command) {
	cmd.Flags().String("nombre", "", "First name")
	cmd.Flags().String("apellido", "", "Last name")
	cmd.Flags().String("especialidad", "", "Specialty")
	cmd.Flags().String("horario", "", "Attendance hours, e.g. \"Lun-Vie 9:00-17:00\"")
	cmd.Flags().String("telefono", "", "Phone number")
	cmd.Flags().String("correo", "", "Email address")
	cmd.Flags().String("direccion", "", "Address")
}

func applyDoctorFlags(cmd *cobra.Command, f *doctor.Form) {
	setString(cmd, "nombre", &f.Nombre)
	setString(cmd, "apellido", &f.Apellido)
	setString(cmd, "especialidad", &f.Especialidad)
	setString(cmd, "horario", &f.HorarioAtencion)
	setString(cmd, "telefono", &f.Telefono)
	setString(cmd, "correo", &f.CorreoElectronico)
	setString(cmd, "direccion", &f.Direccion)
}

func doctorsCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f doctor.Form
			applyDoctorFlags(cmd, &f)
			if err := f.Validate(); err != nil {
				return err
			}
			d, err := a.doctors.Create(cmd.Context(), f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created doctor %d\n", d.ID)
			return nil
		},
	}
	doctorFlags(cmd)
	return cmd
}

func doctorsUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			current, err := a.doctors.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			f := doctor.FormFrom(current)
			applyDoctorFlags(cmd, &f)
			if err := f.Validate(); err != nil {
				return err
			}
			msg, err := a.doctors.Update(cmd.Context(), id, f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
	doctorFlags(cmd)
	return cmd
}

func doctorsDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			ok, err := confirmDelete(cmd, "doctor", id)
			if err != nil || !ok {
				return err
			}
			msg, err := a.doctors.Delete(cmd.Context(), id)
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
