package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/unit"
)

// handleSelection makes sure every selected name is reachable on h, resolving
// sub-units of containers on demand. A name that is neither an attribute nor
// a sub-unit is ignored unless the engine is strict.
func (e *Engine) handleSelection(ctx context.Context, h *unit.Handle, selection []string) error {
	return e.handleEntries(ctx, h, selection, true)
}

func (e *Engine) handleEntries(ctx context.Context, h *unit.Handle, entries []string, expandWildcard bool) error {
	logger := ctxlog.FromContext(ctx).With("unit", h.Name().String())

	for _, entry := range entries {
		if entry == unit.Wildcard {
			if !expandWildcard {
				continue
			}
			names := h.PublicNames()
			logger.Debug("Expanded wildcard selection.", "names", names)
			if _, declared := h.Get(unit.ExportsAttr); declared {
				if err := e.handleEntries(ctx, h, names, false); err != nil {
					return err
				}
			}
			continue
		}

		if _, ok := h.Get(entry); ok {
			continue
		}
		if h.IsContainer() {
			found, err := e.probeSubUnit(ctx, h, entry)
			if err != nil {
				return err
			}
			if found {
				continue
			}
		}
		if e.strict {
			return &Error{
				Kind: KindAttributeNotFound,
				Name: h.Name().String(),
				Err:  fmt.Errorf("%q is neither an attribute nor a sub-unit", entry),
			}
		}
		logger.Debug("Selected name not found, ignoring.", "name", entry)
	}
	return nil
}

// probeSubUnit tries to resolve <h>.<entry>. Only a NotFound for that exact
// name is absorbed; failures from inside the sub-unit propagate.
func (e *Engine) probeSubUnit(ctx context.Context, h *unit.Handle, entry string) (bool, error) {
	child, err := h.Name().Child(entry)
	if err != nil {
		return false, nil
	}
	if _, err := e.resolve(ctx, child, nil); err != nil {
		var rerr *Error
		if errors.As(err, &rerr) && rerr.Kind == KindNotFound && rerr.Name == child.String() {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
