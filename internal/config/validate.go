package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/justinpbarnett/treetop/internal/store"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate runs every check and reports all failures together.
func validate(cfg *Config) error {
	var errs []string

	names := make([]string, 0, len(cfg.Trees))
	for name := range cfg.Trees {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !store.KnownTree(store.TreeName(name)) {
			errs = append(errs, fmt.Sprintf("trees.%s is not a known tree (want %q or %q)", name, store.Tree1, store.Tree2))
		}
	}

	switch cfg.UI.LeafDisplay {
	case LeafDisplayPenguin, LeafDisplayDefault:
	default:
		errs = append(errs, fmt.Sprintf("ui.leaf_display %q must be %q or %q", cfg.UI.LeafDisplay, LeafDisplayPenguin, LeafDisplayDefault))
	}

	if !store.KnownTree(store.TreeName(cfg.UI.OverrideTarget)) {
		errs = append(errs, fmt.Sprintf("ui.override_target %q is not a known tree", cfg.UI.OverrideTarget))
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q must be \"debug\", \"info\", \"warn\", or \"error\"", cfg.Log.Level))
	}

	if strings.Count(cfg.Update.Repo, "/") != 1 {
		errs = append(errs, fmt.Sprintf("update.repo %q must be in owner/name form", cfg.Update.Repo))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// InitialFlags converts the tree section into store seed flags.
func (c *Config) InitialFlags() map[store.TreeName]store.InitialFlags {
	flags := make(map[store.TreeName]store.InitialFlags, len(c.Trees))
	for name, t := range c.Trees {
		f := store.InitialFlags{VisibleOverride: true, ShowChildMessages: true}
		if t.VisibleOverride != nil {
			f.VisibleOverride = *t.VisibleOverride
		}
		if t.ShowChildMessages != nil {
			f.ShowChildMessages = *t.ShowChildMessages
		}
		flags[store.TreeName(name)] = f
	}
	return flags
}
