// Package dupcheck implements the Duplicate Checker: after
// collection, every anonymous SchemaItem's would-be output type path is
// computed, and items that collide are flagged so the Generator can
// disambiguate their names.
package dupcheck

import (
	"github.com/go-logr/logr"

	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/naming"
)

// Check marks Duplicated = true on every anonymous item in schemas whose
// bare TypeCoordinates path collides with another anonymous item's, logging
// one warning per colliding path. Non-anonymous items are never touched:
// only anonymous promotion can produce a naming collision, since every
// concrete schema_name is already unique by ReferenceKey.
func Check(schemas []*model.SchemaItem, logger logr.Logger) {
	groups := make(map[string][]*model.SchemaItem)
	for _, item := range schemas {
		if !item.Anonymous {
			continue
		}
		key := naming.BareTypeCoordinatesFor(item).String()
		groups[key] = append(groups[key], item)
	}

	for path, items := range groups {
		if len(items) < 2 {
			continue
		}
		for _, item := range items {
			item.Duplicated = true
		}
		logger.Info("duplicate anonymous type path detected, disambiguating",
			"path", path, "count", len(items))
	}
}
