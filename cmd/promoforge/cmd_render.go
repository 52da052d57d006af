package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/promoforge/compositor/asset"
	"github.com/promoforge/compositor/brief"
	"github.com/promoforge/compositor/config"
	"github.com/promoforge/compositor/history"
)

var (
	flagBrief   string
	flagContent string
	flagTitle   string
	flagBrand   string
	flagTags    []string
	flagFormat  string
	flagOut     string
	flagOutline bool
)

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBrief, "brief", "", "Path to a brief file (overrides the other request flags)")
	cmd.Flags().StringVar(&flagContent, "content", "", "Body copy of the asset")
	cmd.Flags().StringVar(&flagTitle, "title", "", "Optional title line")
	cmd.Flags().StringVar(&flagBrand, "brand", "", "Brand name for badge and header")
	cmd.Flags().StringSliceVar(&flagTags, "tag", nil, "Hashtag, repeatable")
	cmd.Flags().StringVar(&flagFormat, "format", "square", "Canvas format (story|square)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path")
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an asset without recording it",
		RunE:  runRender,
	}
	addRequestFlags(cmd)
	cmd.Flags().BoolVar(&flagOutline, "outline", false, "Print the layout outline as JSON instead of rendering")
	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render an asset and record it in the export history",
		RunE:  runExport,
	}
	addRequestFlags(cmd)
	return cmd
}

func buildRequest() (asset.Request, error) {
	if flagBrief != "" {
		f, err := os.Open(flagBrief)
		if err != nil {
			return asset.Request{}, fmt.Errorf("open brief: %w", err)
		}
		defer f.Close()
		b, err := brief.Parse(f)
		if err != nil {
			return asset.Request{}, fmt.Errorf("parse brief: %w", err)
		}
		return b.Request()
	}

	format, err := asset.ParseFormat(flagFormat)
	if err != nil {
		return asset.Request{}, err
	}
	req := asset.Request{
		Content:   flagContent,
		Title:     flagTitle,
		BrandName: flagBrand,
		Hashtags:  flagTags,
		Format:    format,
	}
	if err := req.Validate(); err != nil {
		return asset.Request{}, err
	}
	return req, nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	req, err := buildRequest()
	if err != nil {
		return err
	}

	if flagOutline {
		compositor, err := buildCompositor(cfg)
		if err != nil {
			return err
		}
		out, err := compositor.Outline(req)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	coordinator, err := buildCoordinator(cfg)
	if err != nil {
		return err
	}
	rendered, err := coordinator.Preview(cmd.Context(), req)
	if err != nil {
		return err
	}
	return writeRendered(cfg, rendered)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	req, err := buildRequest()
	if err != nil {
		return err
	}
	coordinator, err := buildCoordinator(cfg)
	if err != nil {
		return err
	}

	rendered, err := coordinator.Commit(cmd.Context(), req)
	if errors.Is(err, history.ErrStorageUnavailable) {
		// The asset is done; only the bookkeeping failed.
		log.Warn().Err(err).Msg("export succeeded but was not recorded")
		err = nil
	}
	if err != nil {
		return err
	}
	return writeRendered(cfg, rendered)
}

func writeRendered(cfg config.Config, rendered asset.Rendered) error {
	path := flagOut
	if path == "" {
		ext := "png"
		if rendered.Encoding == asset.JPEG {
			ext = "jpg"
		}
		name := fmt.Sprintf("%s-%s-%s.%s", appName, rendered.Format, time.Now().Format("20060102-150405"), ext)
		path = filepath.Join(cfg.Output.Dir, name)
	}
	if err := os.WriteFile(path, rendered.Data, 0o644); err != nil {
		return fmt.Errorf("write asset: %w", err)
	}
	log.Info().Str("path", path).Int("width", rendered.Width).Int("height", rendered.Height).Msg("asset written")
	return nil
}
