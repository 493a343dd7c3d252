// context.go defines what extensions can reach: the catalog, the user's
// configuration and the active message table.
//
// Extensions receive the Context during Init(), after the root command has
// resolved the source and variant, so they never construct a catalog
// themselves.

package extension

import (
	"github.com/jpl-au/codefind/internal/config"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/service"
)

// Context provides extensions controlled access to codefind internals.
type Context interface {
	// Service returns the catalog for the resolved source and variant.
	// It may not be loaded yet for commands listed by LazyLoader.
	Service() service.Service

	// Config returns the merged user configuration.
	Config() *config.Config

	// Messages returns the localiser for the active language.
	Messages() *i18n.Localizer
}

type extContext struct {
	svc service.Service
	cfg *config.Config
	msg *i18n.Localizer
}

// NewContext creates a new extension context. A nil localiser falls back
// to English.
func NewContext(svc service.Service, cfg *config.Config, msg *i18n.Localizer) Context {
	if msg == nil {
		msg = i18n.New(i18n.Default)
	}
	return &extContext{svc: svc, cfg: cfg, msg: msg}
}

func (c *extContext) Service() service.Service { return c.svc }

func (c *extContext) Config() *config.Config { return c.cfg }

func (c *extContext) Messages() *i18n.Localizer { return c.msg }
