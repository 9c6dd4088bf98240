package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newRenderCommand(o *options) *cobra.Command {
	var (
		outDir string
		first  int
		count  int
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Paginate a text file and write its pages as PNG images",
		Long:  "Paginate a UTF-8 text file with the configured style and write one PNG per page.\nPages are drawn by the same view used for flipping, footer included.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runRender(cmd, args[0], outDir, first, count)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVar(&first, "first", 1, "first page to write (1-based)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of pages to write (0 writes all)")
	return cmd
}

func (o *options) runRender(cmd *cobra.Command, path, outDir string, first, count int) error {
	s, err := o.openSession(path, time.Now)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	total := s.book.Len()
	if first < 1 || first > total {
		return fmt.Errorf("first page %d out of range 1..%d", first, total)
	}
	last := total
	if count > 0 && first-1+count < total {
		last = first - 1 + count
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for n := first; n <= last; n++ {
		if err := s.seek(n); err != nil {
			return err
		}
		if err := s.snapshot(filepath.Join(outDir, fmt.Sprintf("page-%03d.png", n))); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d of %d pages to %s\n", last-first+1, total, outDir)
	return nil
}
