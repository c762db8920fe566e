// Package main provides the xlcell command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/javajack/xlcell"
)

var (
	filePath   string
	sheetName  string
	outputPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlcell",
		Short: "Copy, clear and merge cells in xlsx workbooks",
		Long: `xlcell applies cell-level edits to an existing workbook:
copying a cell's value, style, comment and hyperlink, clearing cells
back to a blank unformatted state, and merging a range so that the
first non-blank cell's content survives in the upper-left position.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "Workbook to edit")
	rootCmd.PersistentFlags().StringVarP(&sheetName, "sheet", "s", "Sheet1", "Sheet the cell references are on")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output path (default: save in place)")
	if err := rootCmd.MarkPersistentFlagRequired("file"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.AddCommand(copyCmd(), clearCmd(), mergeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a cell's content, style, comment and hyperlink onto another cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(func(f *excelize.File) error {
				return xlcell.Copy(f, sheetName, args[0], args[1])
			})
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear CELL [CELL...]",
		Short: "Clear cells back to a blank, unformatted state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(func(f *excelize.File) error {
				for _, cell := range args {
					if err := xlcell.Clear(f, sheetName, cell); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge RANGE",
		Short: "Merge a range, keeping the first non-blank cell's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(func(f *excelize.File) error {
				return xlcell.Merge(f, sheetName, args[0])
			})
		},
	}
}

// edit opens the workbook, applies fn, and saves the result either in place
// or to the --output path.
func edit(fn func(*excelize.File) error) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", filePath)
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}

	if outputPath != "" {
		if err := f.SaveAs(outputPath); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		return nil
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("write %s: %w", filePath, err)
	}
	return nil
}
