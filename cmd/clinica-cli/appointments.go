package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/domain/appointment"
	"github.com/clinica/clinica/internal/domain/shape"
)

func appointmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"citas"},
		Short:   "Manage appointments",
	}
	cmd.AddCommand(appointmentsListCmd(a))
	cmd.AddCommand(appointmentsViewCmd(a))
	cmd.AddCommand(appointmentsCreateCmd(a))
	cmd.AddCommand(appointmentsUpdateCmd(a))
	cmd.AddCommand(appointmentsDeleteCmd(a))
	return cmd
}

func appointmentsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.appointments.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, c := range list {
				rows = append(rows, []string{
					strconv.Itoa(c.ID),
					c.FechaHora,
					c.Paciente.Nombre + " " + c.Paciente.Apellido,
					c.Doctor.Nombre + " " + c.Doctor.Apellido,
					c.MotivoCita,
				})
			}
			printTable(cmd, []string{"ID", "WHEN", "PATIENT", "DOCTOR", "REASON"}, rows)
			return nil
		},
	}
}

func appointmentsViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			c, ok := a.appointments.Cached(id)
			if !ok {
				c, err = a.appointments.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			printDetail(cmd, [][2]string{
				{"id", strconv.Itoa(c.ID)},
				{"when", c.FechaHora},
				{"patient", fmt.Sprintf("%s %s (%d)", c.Paciente.Nombre, c.Paciente.Apellido, c.IDPaciente)},
				{"doctor", fmt.Sprintf("%s %s (%d)", c.Doctor.Nombre, c.Doctor.Apellido, c.IDDoctor)},
				{"reason", c.MotivoCita},
				{"notes", shape.Deref(c.NotasMedicas)},
			})
			return nil
		},
	}
}

func appointmentFlags(cmd *cobra.Command) {
	cmd.Flags().Int("paciente", 0, "Patient id")
	cmd.Flags().Int("doctor", 0, "Doctor id")
	cmd.Flags().String("fecha-hora", "", "Date and time (RFC 3339, e.g. 2026-09-15T10:30:00Z)")
	cmd.Flags().String("motivo", "", "Reason for the visit")
	cmd.Flags().String("notas", "", "Medical notes")
}

func applyAppointmentFlags(cmd *cobra.Command, f *appointment.Form) error {
	setInt(cmd, "paciente", &f.IDPaciente)
	setInt(cmd, "doctor", &f.IDDoctor)
	setString(cmd, "motivo", &f.MotivoCita)
	setString(cmd, "notas", &f.NotasMedicas)
	if cmd.Flags().Changed("fecha-hora") {
		raw, _ := cmd.Flags().GetString("fecha-hora")
		when, err := shape.ParseDateTime(raw)
		if err != nil {
			return fmt.Errorf("invalid --fecha-hora: %w", err)
		}
		f.FechaHora = when
	}
	return nil
}

func appointmentsCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f appointment.Form
			if err := applyAppointmentFlags(cmd, &f); err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return err
			}
			c, err := a.appointments.Create(cmd.Context(), f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created appointment %d\n", c.ID)
			return nil
		},
	}
	appointmentFlags(cmd)
	return cmd
}

func appointmentsUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			current, err := a.appointments.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			f, err := appointment.FormFrom(current)
			if err != nil {
				return err
			}
			if err := applyAppointmentFlags(cmd, &f); err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return err
			}
			msg, err := a.appointments.Update(cmd.Context(), id, f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
	appointmentFlags(cmd)
	return cmd
}

func appointmentsDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			ok, err := confirmDelete(cmd, "appointment", id)
			if err != nil || !ok {
				return err
			}
			msg, err := a.appointments.Delete(cmd.Context(), id)
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
