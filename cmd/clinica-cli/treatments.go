package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/domain/shape"
	"github.com/clinica/clinica/internal/domain/treatment"
)

func treatmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "treatments",
		Aliases: []string{"tratamientos"},
		Short:   "Manage treatments",
	}
	cmd.AddCommand(treatmentsListCmd(a))
	cmd.AddCommand(treatmentsViewCmd(a))
	cmd.AddCommand(treatmentsCreateCmd(a))
	cmd.AddCommand(treatmentsUpdateCmd(a))
	cmd.AddCommand(treatmentsDeleteCmd(a))
	return cmd
}

func treatmentsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all treatments",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.treatments.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, t := range list {
				rows = append(rows, []string{
					strconv.Itoa(t.ID),
					t.Paciente.Nombre + " " + t.Paciente.Apellido,
					t.Doctor.Nombre + " " + t.Doctor.Apellido,
					t.Descripcion,
					t.FechaInicio,
					t.FechaFin,
				})
			}
			printTable(cmd, []string{"ID", "PATIENT", "DOCTOR", "DESCRIPTION", "FROM", "TO"}, rows)
			return nil
		},
	}
}

func treatmentsViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one treatment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			t, ok := a.treatments.Cached(id)
			if !ok {
				t, err = a.treatments.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			printDetail(cmd, [][2]string{
				{"id", strconv.Itoa(t.ID)},
				{"patient", fmt.Sprintf("%s %s (%d)", t.Paciente.Nombre, t.Paciente.Apellido, t.IDPaciente)},
				{"doctor", fmt.Sprintf("%s %s (%d)", t.Doctor.Nombre, t.Doctor.Apellido, t.IDDoctor)},
				{"description", t.Descripcion},
				{"from", t.FechaInicio},
				{"to", t.FechaFin},
			})
			return nil
		},
	}
}

func treatmentFlags(cmd *cobra.Command) {
	cmd.Flags().Int("paciente", 0, "Patient id")
	cmd.Flags().Int("doctor", 0, "Doctor id")
	cmd.Flags().String("descripcion", "", "Description")
	cmd.Flags().String("fecha-inicio", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("fecha-fin", "", "End date (YYYY-MM-DD)")
}

func applyTreatmentFlags(cmd *cobra.Command, f *treatment.Form) error {
	setInt(cmd, "paciente", &f.IDPaciente)
	setInt(cmd, "doctor", &f.IDDoctor)
	setString(cmd, "descripcion", &f.Descripcion)
	if cmd.Flags().Changed("fecha-inicio") {
		raw, _ := cmd.Flags().GetString("fecha-inicio")
		start, err := shape.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("invalid --fecha-inicio: %w", err)
		}
		f.FechaInicio = start
	}
	if cmd.Flags().Changed("fecha-fin") {
		raw, _ := cmd.Flags().GetString("fecha-fin")
		end, err := shape.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("invalid --fecha-fin: %w", err)
		}
		f.FechaFin = end
	}
	return nil
}

func treatmentsCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a treatment",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f treatment.Form
			if err := applyTreatmentFlags(cmd, &f); err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return err
			}
			t, err := a.treatments.Create(cmd.Context(), f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created treatment %d\n", t.ID)
			return nil
		},
	}
	treatmentFlags(cmd)
	return cmd
}

func treatmentsUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a treatment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			current, err := a.treatments.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			f, err := treatment.FormFrom(current)
			if err != nil {
				return err
			}
			if err := applyTreatmentFlags(cmd, &f); err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return err
			}
			msg, err := a.treatments.Update(cmd.Context(), id, f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
	treatmentFlags(cmd)
	return cmd
}

func treatmentsDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a treatment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			ok, err := confirmDelete(cmd, "treatment", id)
			if err != nil || !ok {
				return err
			}
			msg, err := a.treatments.Delete(cmd.Context(), id)
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
