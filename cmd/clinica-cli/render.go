package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// printTable renders rows under a tab-aligned header.
func printTable(cmd *cobra.Command, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no records")
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// printDetail renders a single record as label: value lines.
func printDetail(cmd *cobra.Command, pairs [][2]string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(w, "%s:\t%s\n", p[0], p[1])
	}
	w.Flush()
}

// argID parses the positional <id> argument.
func argID(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// setString copies a string flag onto dst only when it was passed.
func setString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		*dst = v
	}
}

// setInt copies an int flag onto dst only when it was passed.
func setInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		*dst = v
	}
}

// confirmDelete asks before a destructive call unless --yes was passed.
func confirmDelete(cmd *cobra.Command, what string, id int) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "delete %s %d? [y/N]: ", what, id)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
