package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/civic-innovation-backend/internal/http/response"
	"github.com/yungbote/civic-innovation-backend/internal/invocation"
	"github.com/yungbote/civic-innovation-backend/internal/observability"
	pkgerrors "github.com/yungbote/civic-innovation-backend/internal/pkg/errors"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/modules"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/registry"
)

type PromptHandler struct {
	log      *logger.Logger
	registry *registry.Registry
	library  *modules.Library
	service  *invocation.Service
	metrics  *observability.Metrics
}

func NewPromptHandler(log *logger.Logger, reg *registry.Registry, lib *modules.Library, svc *invocation.Service, metrics *observability.Metrics) *PromptHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &PromptHandler{log: log, registry: reg, library: lib, service: svc, metrics: metrics}
}

type categoryResponse struct {
	registry.Module
	Modules []modules.Key `json:"modules"`
}

// GET /api/prompts/categories
func (h *PromptHandler) ListCategories(c *gin.Context) {
	h.metrics.IncRegistryQuery("categories")
	cats := h.registry.Categories()
	response.RespondOK(c, gin.H{"categories": cats, "count": len(cats)})
}

// GET /api/prompts/categories/:category
func (h *PromptHandler) GetCategory(c *gin.Context) {
	h.metrics.IncRegistryQuery("category")
	name := c.Param("category")
	entry, ok := h.registry.Category(name)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "category_not_found",
			fmt.Errorf("%w: category %q", pkgerrors.ErrNotFound, name))
		return
	}
	keys := []modules.Key{}
	for _, k := range h.library.Keys() {
		if k.Category == name {
			keys = append(keys, k)
		}
	}
	response.RespondOK(c, categoryResponse{
		Module:  registry.Module{Name: name, Entry: entry},
		Modules: keys,
	})
}

// GET /api/prompts/search?q=
func (h *PromptHandler) Search(c *gin.Context) {
	h.metrics.IncRegistryQuery("search")
	q := c.Query("q")
	response.RespondOK(c, gin.H{"query": q, "results": h.registry.Search(q)})
}

// GET /api/prompts/stats
func (h *PromptHandler) Stats(c *gin.Context) {
	h.metrics.IncRegistryQuery("stats")
	response.RespondOK(c, h.registry.Stats())
}

// GET /api/prompts/recommend?use_case=
func (h *PromptHandler) Recommend(c *gin.Context) {
	h.metrics.IncRegistryQuery("recommend")
	useCase := c.Query("use_case")
	response.RespondOK(c, gin.H{"use_case": useCase, "recommendations": h.registry.Recommend(useCase)})
}

// GET /api/prompts/modules
func (h *PromptHandler) ListModules(c *gin.Context) {
	response.RespondOK(c, gin.H{"modules": h.library.Keys()})
}

type validateRequest struct {
	Module   string          `json:"module"`
	Required []string        `json:"required"`
	Context  builder.Context `json:"context"`
}

// POST /api/prompts/validate
//
// With a module the module's required context keys are checked; otherwise the
// explicit required list is.
func (h *PromptHandler) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	required := req.Required
	if strings.TrimSpace(req.Module) != "" {
		cfg, err := h.lookup(req.Module)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		required = cfg.RequiredContext
	}
	response.RespondOK(c, builder.ValidateContext(req.Context, required...))
}

type buildRequest struct {
	Module         string          `json:"module" binding:"required"`
	Context        builder.Context `json:"context"`
	Mode           string          `json:"mode"`
	Language       string          `json:"language"`
	SkipValidation bool            `json:"skip_validation"`
}

func (r buildRequest) toInvocation() (invocation.Request, error) {
	key, ok := modules.ParseKey(r.Module)
	if !ok {
		return invocation.Request{}, fmt.Errorf("%w: module must be category/name", pkgerrors.ErrInvalidArgument)
	}
	return invocation.Request{
		Module:         key,
		Context:        r.Context,
		Mode:           invocation.Mode(strings.ToLower(strings.TrimSpace(r.Mode))),
		Language:       r.Language,
		SkipValidation: r.SkipValidation,
	}, nil
}

type previewResponse struct {
	builder.Payload
	Fingerprint string `json:"fingerprint"`
}

// POST /api/prompts/preview builds a payload without invoking the AI backend.
func (h *PromptHandler) Preview(c *gin.Context) {
	req, ok := h.bindBuild(c)
	if !ok {
		return
	}
	p, err := h.service.Prepare(req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, previewResponse{Payload: p, Fingerprint: p.Fingerprint()})
}

// POST /api/prompts/invoke
func (h *PromptHandler) Invoke(c *gin.Context) {
	req, ok := h.bindBuild(c)
	if !ok {
		return
	}
	res, err := h.service.Run(c.Request.Context(), req)
	if err != nil {
		if !errors.Is(err, pkgerrors.ErrInvalidArgument) && !errors.Is(err, pkgerrors.ErrNotFound) {
			h.log.Error("prompt invoke failed", "module", req.Module.String(), "error", err)
		}
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

func (h *PromptHandler) bindBuild(c *gin.Context) (invocation.Request, bool) {
	var body buildRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return invocation.Request{}, false
	}
	req, err := body.toInvocation()
	if err != nil {
		response.RespondAPIError(c, err)
		return invocation.Request{}, false
	}
	return req, true
}

func (h *PromptHandler) lookup(raw string) (*builder.Config, error) {
	key, ok := modules.ParseKey(raw)
	if !ok {
		return nil, fmt.Errorf("%w: module must be category/name", pkgerrors.ErrInvalidArgument)
	}
	cfg, ok := h.library.Get(key.Category, key.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", invocation.ErrUnknownModule, key)
	}
	return cfg, nil
}
