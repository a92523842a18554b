package mofassist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/mofassist/internal/config"
	"github.com/kailas-cloud/mofassist/internal/domain/advice"
	"github.com/kailas-cloud/mofassist/internal/domain/material"
	"github.com/kailas-cloud/mofassist/internal/repository/catalog"
	chatuc "github.com/kailas-cloud/mofassist/internal/usecase/chat"
	forwarduc "github.com/kailas-cloud/mofassist/internal/usecase/forward"
	healthuc "github.com/kailas-cloud/mofassist/internal/usecase/health"
	inverseuc "github.com/kailas-cloud/mofassist/internal/usecase/inverse"
	"github.com/kailas-cloud/mofassist/internal/usecase/prediction"
)

const defaultLang = "en"

// Internal interfaces, swapped for fakes in tests.
type forwardUseCase interface {
	Forward(ctx context.Context, req forwarduc.Request) []advice.Candidate
}

type inverseUseCase interface {
	Inverse(ctx context.Context, req inverseuc.Request) []advice.AppSuggestion
}

type chatUseCase interface {
	Reply(ctx context.Context, message string) chatuc.Reply
}

type catalogReader interface {
	All() []material.Material
	Lookup(ctx context.Context, name string) (material.Material, error)
}

// Client is the embedded advisor entry point.
type Client struct {
	catalog    catalogReader
	forwardSvc forwardUseCase
	inverseSvc inverseUseCase
	chatSvc    chatUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a Client over the built-in material catalog.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		generatedPrefix: config.DefaultGeneratedPrefix,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if strings.TrimSpace(cfg.generatedPrefix) == "" {
		return nil, fmt.Errorf("mofassist: generated prefix must not be empty: %w", ErrInvalidRequest)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return wireClient(catalog.Default(), cfg, obs), nil
}

func wireClient(cat *catalog.Catalog, cfg *clientConfig, obs *observer) *Client {
	predictor := prediction.New(cfg.generatedPrefix)
	if cfg.idSource != nil {
		predictor = predictor.WithIDSource(cfg.idSource)
	}

	return &Client{
		catalog:    cat,
		forwardSvc: forwarduc.New(cat, predictor),
		inverseSvc: inverseuc.New(cat),
		chatSvc:    chatuc.New(),
		healthSvc:  healthuc.New(cat),
		obs:        obs,
	}
}

// Forward ranks candidate materials for an application.
// Candidates below the constraint thresholds are dropped; order is preserved.
func (c *Client) Forward(ctx context.Context, application string, constraints *Constraints) (out []Candidate, err error) {
	start := time.Now()
	defer func() { c.obs.observe("forward", start, len(out), err) }()

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}

	cands := c.forwardSvc.Forward(ctx, forwarduc.Request{
		Application: application,
		Constraints: constraintsToDomain(constraints),
		Lang:        defaultLang,
	})
	out = make([]Candidate, len(cands))
	for i := range cands {
		out[i] = candidateFromDomain(&cands[i])
	}
	return out, nil
}

// Inverse suggests applications for a material. An empty or unknown name
// resolves to the first catalog entry.
func (c *Client) Inverse(ctx context.Context, name string) (out []AppSuggestion, err error) {
	start := time.Now()
	defer func() { c.obs.observe("inverse", start, len(out), err) }()

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}

	apps := c.inverseSvc.Inverse(ctx, inverseuc.Request{Name: name, Lang: defaultLang})
	out = make([]AppSuggestion, len(apps))
	for i := range apps {
		out[i] = suggestionFromDomain(&apps[i])
	}
	return out, nil
}

// Chat returns the canned hint for a free-text message.
func (c *Client) Chat(ctx context.Context, message string) (_ string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("chat", start, -1, err) }()

	if err = ctx.Err(); err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return c.chatSvc.Reply(ctx, message).Text, nil
}

// Material looks up a catalog record by name, case-insensitively.
// Returns ErrMaterialNotFound on a miss.
func (c *Client) Material(ctx context.Context, name string) (_ Material, err error) {
	start := time.Now()
	defer func() { c.obs.observe("material", start, 1, err) }()

	if err = ctx.Err(); err != nil {
		return Material{}, fmt.Errorf("material: %w", err)
	}

	m, err := c.catalog.Lookup(ctx, name)
	if err != nil {
		return Material{}, fmt.Errorf("material lookup: %w", err)
	}
	return materialFromDomain(&m), nil
}

// Materials returns the catalog in order.
func (c *Client) Materials() []Material {
	all := c.catalog.All()
	out := make([]Material, len(all))
	for i := range all {
		out[i] = materialFromDomain(&all[i])
	}
	return out
}
