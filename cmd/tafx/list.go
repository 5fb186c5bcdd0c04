package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/raykavin/tafx/pkg/plugin"
)

var listGroup string

func buildListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFunctions(cmd.OutOrStdout(), plugin.Default(), listGroup)
		},
	}
	listCmd.Flags().StringVarP(&listGroup, "group", "g", "", "Only functions whose group contains this text (e.g. momentum)")
	return listCmd
}

func buildInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <function>",
		Short: "Describe the inputs, parameters and outputs of a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFunction(cmd.OutOrStdout(), plugin.Default(), args[0])
		},
	}
}

func printFunctions(w io.Writer, r *plugin.Registry, group string) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Function", "Group", "Description", "Outputs"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	filter := strings.ToLower(group)
	rows := 0
	for _, name := range r.Functions() {
		fn, err := r.Lookup(name)
		if err != nil {
			return err
		}
		if filter != "" && !strings.Contains(strings.ToLower(string(fn.Group)), filter) {
			continue
		}
		table.Append([]string{fn.Name, string(fn.Group), fn.Description, strings.Join(fn.Outputs, ", ")})
		rows++
	}

	if rows == 0 {
		return fmt.Errorf("no function in group %q", group)
	}
	table.SetFooter([]string{"", "", "", strconv.Itoa(rows) + " functions"})
	table.Render()
	return nil
}

func printFunction(w io.Writer, r *plugin.Registry, name string) error {
	fn, err := r.Lookup(name)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	lookback, err := r.Lookback(name, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%s)\n%s\n\n", fn.Name, fn.Group, fn.Description)
	fmt.Fprintf(w, "Inputs:   %s\n", strings.Join(fn.Inputs, ", "))
	fmt.Fprintf(w, "Outputs:  %s\n", strings.Join(fn.Outputs, ", "))
	fmt.Fprintf(w, "Lookback: %d\n", lookback)

	if len(fn.Params) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Param", "Kind", "Default", "Min", "Max"})
	table.AppendBulk(lo.Map(fn.Params, func(p plugin.Param, _ int) []string {
		return []string{p.Name, p.Kind.String(), formatNumber(p.Default), formatNumber(p.Min), formatNumber(p.Max)}
	}))
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	table.Render()
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
