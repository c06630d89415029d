package app

import (
	"fmt"

	"github.com/yungbote/civic-innovation-backend/internal/invocation"
	"github.com/yungbote/civic-innovation-backend/internal/observability"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/modules"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/registry"
)

// Core is the prompt composition stack shared by the server and the CLI.
type Core struct {
	Provider localization.Provider
	Builder  *builder.Builder
	Catalog  *registry.Catalog
	Registry *registry.Registry
	Library  *modules.Library
	Service  *invocation.Service
}

// LoadCatalog reads path when set, otherwise returns the built-in table.
func LoadCatalog(path string) (*registry.Catalog, error) {
	if path == "" {
		return registry.DefaultCatalog(), nil
	}
	c, err := registry.LoadCatalogYAML(path)
	if err != nil {
		return nil, fmt.Errorf("load prompt catalog: %w", err)
	}
	return c, nil
}

// WireCore builds the stack. invoker may be nil, in which case only payload
// previews are available.
func WireCore(log *logger.Logger, cfg Config, invoker invocation.Invoker, metrics *observability.Metrics) (Core, error) {
	catalog, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return Core{}, err
	}
	provider := localization.Default()
	b := builder.New(provider)
	lib := modules.NewLibrary(provider)
	reg := registry.New(catalog)

	for _, k := range lib.Keys() {
		if _, ok := reg.Category(k.Category); !ok {
			log.Warn("Prompt module category missing from catalog", "module", k.String())
		}
	}
	if invoker == nil {
		log.Warn("No AI invoker configured; /api/prompts/invoke will return 503")
	}

	return Core{
		Provider: provider,
		Builder:  b,
		Catalog:  catalog,
		Registry: reg,
		Library:  lib,
		Service:  invocation.NewService(log, b, lib, invoker, metrics,
			invocation.WithDefaultLanguage(cfg.DefaultLanguage),
			invocation.WithStyleGuide(cfg.StyleGuide),
		),
	}, nil
}
