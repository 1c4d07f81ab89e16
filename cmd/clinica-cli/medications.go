package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/domain/medication"
)

func medicationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "medications",
		Aliases: []string{"medicamentos"},
		Short:   "Manage medications",
	}
	cmd.AddCommand(medicationsListCmd(a))
	cmd.AddCommand(medicationsViewCmd(a))
	cmd.AddCommand(medicationsCreateCmd(a))
	cmd.AddCommand(medicationsUpdateCmd(a))
	cmd.AddCommand(medicationsDeleteCmd(a))
	return cmd
}

func medicationsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all medications",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.medications.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, m := range list {
				rows = append(rows, []string{
					strconv.Itoa(m.ID), m.Nombre, m.Dosis, m.Frecuencia,
					strconv.Itoa(m.IDTratamiento),
				})
			}
			printTable(cmd, []string{"ID", "NAME", "DOSE", "FREQUENCY", "TREATMENT"}, rows)
			return nil
		},
	}
}

func medicationsViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			m, ok := a.medications.Cached(id)
			if !ok {
				m, err = a.medications.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			printDetail(cmd, [][2]string{
				{"id", strconv.Itoa(m.ID)},
				{"name", m.Nombre},
				{"description", m.Descripcion},
				{"dose", m.Dosis},
				{"frequency", m.Frecuencia},
				{"treatment", fmt.Sprintf("%s (%d)", m.Tratamiento.Descripcion, m.IDTratamiento)},
			})
			return nil
		},
	}
}

func medicationFlags(cmd *cobra.Command) {
	cmd.Flags().String("nombre", "", "Medication name")
	cmd.Flags().String("descripcion", "", "Description")
	cmd.Flags().String("dosis", "", "Dose, e.g. 400mg")
	cmd.Flags().String("frecuencia", "", "Frequency, e.g. every 8 hours")
	cmd.Flags().Int("tratamiento", 0, "Treatment id")
}

func applyMedicationFlags(cmd *cobra.Command, f *medication.Form) {
	setString(cmd, "nombre", &f.Nombre)
	setString(cmd, "descripcion", &f.Descripcion)
	setString(cmd, "dosis", &f.Dosis)
	setString(cmd, "frecuencia", &f.Frecuencia)
	setInt(cmd, "tratamiento", &f.IDTratamiento)
}

func medicationsCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a medication to a treatment",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f medication.Form
			applyMedicationFlags(cmd, &f)
			if err := f.Validate(); err != nil {
				return err
			}
			m, err := a.medications.Create(cmd.Context(), f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created medication %d\n", m.ID)
			return nil
		},
	}
	medicationFlags(cmd)
	return cmd
}

func medicationsUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			current, err := a.medications.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			f := medication.FormFrom(current)
			applyMedicationFlags(cmd, &f)
			if err := f.Validate(); err != nil {
				return err
			}
			msg, err := a.medications.Update(cmd.Context(), id, f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
	medicationFlags(cmd)
	return cmd
}

func medicationsDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			ok, err := confirmDelete(cmd, "medication", id)
			if err != nil || !ok {
				return err
			}
			msg, err := a.medications.Delete(cmd.Context(), id)
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
