package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/chille/showcase/internal/catalog"
	"github.com/chille/showcase/internal/disclosure"
	"github.com/chille/showcase/internal/page"
	"github.com/chille/showcase/internal/presenter"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the items shown on the page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, err := content.Load(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tFEATURES\tMEDIA")
			for _, it := range cat.Items() {
				media := it.MediaRef
				if !it.HasMedia() {
					media = "-"
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", it.ID, it.Title, len(it.Features), media)
			}
			return tw.Flush()
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		format   string
		expanded int64
	)
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write stored content as a json or msgpack bundle, or an html snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
			}
			if format == "html" || format == "htm" {
				sel := disclosure.None
				if cmd.Flags().Changed("expanded") {
					sel = disclosure.Of(catalog.ID(expanded))
				}
				return exportHTML(cmd, path, sel)
			}
			f, err := catalog.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := content.ExportFile(cmd.Context(), path, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s bundle to %s\n", f, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json, msgpack or html (default from file extension)")
	cmd.Flags().Int64Var(&expanded, "expanded", 0, "item id to show expanded in an html snapshot")
	return cmd
}

func exportHTML(cmd *cobra.Command, path string, sel disclosure.Selection) error {
	b, cat, err := content.Load(cmd.Context())
	if err != nil {
		return err
	}
	opts := page.DefaultOptions(time.Now().Year())
	if !cfg.Animation.Enabled {
		opts.Stagger, opts.Reveal = 0, 0
	} else {
		opts.Stagger = cfg.Animation.Stagger.Seconds()
		opts.Reveal = cfg.Animation.Expand.Seconds()
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if err := page.Render(cmd.Context(), f, b.Site, presenter.Static(cat, sel), opts); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("render page: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	logger.Info("snapshot exported", "path", path, "expanded", sel.Open, "id", sel.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported html snapshot to %s\n", path)
	return nil
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace stored content with a json or msgpack bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := content.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d rows changed)\n", args[0], n)
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the shipped portfolio content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := content.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Content reset to defaults")
			return nil
		},
	}
}
