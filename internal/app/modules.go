package app

import (
	"github.com/vk/flowgridgo/internal/extension"
	"github.com/vk/flowgridgo/modules/eventlog"
	"github.com/vk/flowgridgo/modules/liveshare"
	"github.com/vk/flowgridgo/modules/socketguard"
)

// coreExtensions is the definitive list of extensions compiled into the
// flowgridgo binary, selected by configuration. Attachment order is pipe
// dispatch order, so the guard runs before anything is forwarded.
func coreExtensions(cfg *Config) []extension.Extension {
	exts := []extension.Extension{
		&eventlog.Module{},
	}
	if cfg.StrictSockets {
		exts = append(exts, &socketguard.Module{})
	}
	if cfg.LiveShareURL != "" {
		exts = append(exts, &liveshare.Module{URL: cfg.LiveShareURL})
	}
	return exts
}
