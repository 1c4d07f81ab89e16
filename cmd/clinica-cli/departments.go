package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinica/clinica/internal/domain/department"
)

func departmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"departamentos"},
		Short:   "Manage departments",
	}
	cmd.AddCommand(departmentsListCmd(a))
	cmd.AddCommand(departmentsViewCmd(a))
	cmd.AddCommand(departmentsCreateCmd(a))
	cmd.AddCommand(departmentsUpdateCmd(a))
	cmd.AddCommand(departmentsDeleteCmd(a))
	return cmd
}

func departmentsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.departments.List(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, d := range list {
				rows = append(rows, []string{
					strconv.Itoa(d.ID), d.Nombre, d.Descripcion, strconv.Itoa(d.Jefe),
				})
			}
			printTable(cmd, []string{"ID", "NAME", "DESCRIPTION", "HEAD"}, rows)
			return nil
		},
	}
}

func departmentsViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			d, ok := a.departments.Cached(id)
			if !ok {
				d, err = a.departments.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			printDetail(cmd, [][2]string{
				{"id", strconv.Itoa(d.ID)},
				{"name", d.Nombre},
				{"description", d.Descripcion},
				{"head", strconv.Itoa(d.Jefe)},
			})
			return nil
		},
	}
}

func departmentFlags(cmd *cobra.Command) {
	cmd.Flags().String("nombre", "", "Department name")
	cmd.Flags().String("descripcion", "", "Description")
	cmd.Flags().Int("jefe", 0, "Head of department id")
}

func applyDepartmentFlags(cmd *cobra.Command, f *department.Form) {
	setString(cmd, "nombre", &f.Nombre)
	setString(cmd, "descripcion", &f.Descripcion)
	setInt(cmd, "jefe", &f.Jefe)
}

func departmentsCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f department.Form
			applyDepartmentFlags(cmd, &f)
			if err := f.Validate(); err != nil {
				return err
			}
			d, err := a.departments.Create(cmd.Context(), f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created department %d\n", d.ID)
			return nil
		},
	}
	departmentFlags(cmd)
	return cmd
}

func departmentsUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			current, err := a.departments.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			f := department.FormFrom(current)
			applyDepartmentFlags(cmd, &f)
			if err := f.Validate(); err != nil {
				return err
			}
			msg, err := a.departments.Update(cmd.Context(), id, f.Write())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}
	departmentFlags(cmd)
	return cmd
}

func departmentsDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argID(args)
			if err != nil {
				return err
			}
			ok, err := confirmDelete(cmd, "department", id)
			if err != nil || !ok {
				return err
			}
			msg, err := a.departments.Delete(cmd.Context(), id)
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
