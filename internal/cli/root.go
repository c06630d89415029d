// Package cli implements promptctl, an offline tool for browsing the prompt
// catalog and previewing built payloads.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/civic-innovation-backend/internal/app"
	"github.com/yungbote/civic-innovation-backend/internal/invocation"
	"github.com/yungbote/civic-innovation-backend/internal/platform/envutil"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/modules"
)

type options struct {
	catalogPath string
	language    string
	verbose     bool
}

// NewRootCommand builds the promptctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "promptctl",
		Short:         "Browse the prompt catalog and preview prompt payloads",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", envutil.String("PROMPT_CATALOG_PATH", ""), "YAML catalog file (default: built-in catalog)")
	root.PersistentFlags().StringVar(&opts.language, "language", envutil.String("DEFAULT_LANGUAGE", "en"), "default language for saudi-context previews")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log wiring diagnostics to stderr")

	root.AddCommand(
		newCategoriesCmd(opts),
		newCategoryCmd(opts),
		newSearchCmd(opts),
		newStatsCmd(opts),
		newRecommendCmd(opts),
		newModulesCmd(opts),
		newPreviewCmd(opts),
	)
	return root
}

func (o *options) core() (app.Core, error) {
	log := logger.NewNop()
	if o.verbose {
		l, err := logger.New("development")
		if err != nil {
			return app.Core{}, err
		}
		log = l
	}
	return app.WireCore(log, app.Config{CatalogPath: o.catalogPath, DefaultLanguage: o.language}, nil, nil)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List prompt categories in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			core, err := opts.core()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), core.Registry.Categories())
		},
	}
}

func newCategoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "Show one category entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := opts.core()
			if err != nil {
				return err
			}
			entry, ok := core.Registry.Category(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q", args[0])
			}
			return printJSON(cmd.OutOrStdout(), entry)
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find categories whose name contains keyword",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := opts.core()
			if err != nil {
				return err
			}
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}
			return printJSON(cmd.OutOrStdout(), core.Registry.Search(keyword))
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the catalog by size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			core, err := opts.core()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), core.Registry.Stats())
		},
	}
}

func newRecommendCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <use case...>",
		Short: "Rank categories against a free-text use case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := opts.core()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), core.Registry.Recommend(strings.Join(args, " ")))
		},
	}
}

func newModulesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the prompt modules that can be previewed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			core, err := opts.core()
			if err != nil {
				return err
			}
			keys := core.Library.Keys()
			names := make([]string, 0, len(keys))
			for _, k := range keys {
				names = append(names, k.String())
			}
			return printJSON(cmd.OutOrStdout(), names)
		},
	}
}

func newPreviewCmd(opts *options) *cobra.Command {
	var (
		contextJSON string
		contextFile string
		mode        string
		language    string
		skip        bool
	)
	cmd := &cobra.Command{
		Use:   "preview <category/name>",
		Short: "Build a prompt payload without invoking the AI backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := modules.ParseKey(args[0])
			if !ok {
				return fmt.Errorf("module must be category/name, got %q", args[0])
			}
			ctx, err := readContext(contextJSON, contextFile)
			if err != nil {
				return err
			}
			core, err := opts.core()
			if err != nil {
				return err
			}
			p, err := core.Service.Prepare(invocation.Request{
				Module:         key,
				Context:        ctx,
				Mode:           invocation.Mode(mode),
				Language:       language,
				SkipValidation: skip,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), struct {
				builder.Payload
				Fingerprint string `json:"fingerprint"`
			}{p, p.Fingerprint()})
		},
	}
	cmd.Flags().StringVar(&contextJSON, "context", "", "prompt context as a JSON object")
	cmd.Flags().StringVar(&contextFile, "context-file", "", "file holding the prompt context JSON")
	cmd.Flags().StringVar(&mode, "mode", string(invocation.ModePlain), "build mode: plain, saudi or bilingual")
	cmd.Flags().StringVar(&language, "lang", "", "language for saudi mode (default: --language)")
	cmd.Flags().BoolVar(&skip, "skip-validation", false, "build even when required context is missing")
	cmd.MarkFlagsMutuallyExclusive("context", "context-file")
	return cmd
}

func readContext(inline, file string) (builder.Context, error) {
	raw := inline
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read context file: %w", err)
		}
		raw = string(b)
	}
	ctx := builder.Context{}
	if strings.TrimSpace(raw) == "" {
		return ctx, nil
	}
	if err := json.Unmarshal([]byte(raw), &ctx); err != nil {
		return nil, fmt.Errorf("parse context: %w", err)
	}
	return ctx, nil
}
