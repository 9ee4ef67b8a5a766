package generator

import (
	"github.com/go-logr/logr"

	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/naming"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// Generate classifies and lowers every collected SchemaItem into an
// EmissionUnit, then assembles the output tree. schemas must
// already be sorted and duplicate-checked (collector.Collect then
// dupcheck.Check). importBase is the Go import path the generated tree will
// live under once written, used to qualify cross-domain package imports.
func Generate(schemas []*model.SchemaItem, refTargets map[*openapi.Schema]model.ReferenceKey, logger logr.Logger, importBase string) (*OutputTree, error) {
	reg := NewRegistry(schemas, refTargets)

	units := make([]*EmissionUnit, 0, len(schemas))
	for _, item := range schemas {
		unit, err := lowerItem(reg, item)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			continue // CategoryPrimitive: no emission
		}
		units = append(units, unit)
	}

	return BuildTree(units, importBase), nil
}

// lowerItem classifies item and builds its EmissionUnit, or returns
// (nil, nil) for CategoryPrimitive.
func lowerItem(reg *Registry, item *model.SchemaItem) (*EmissionUnit, error) {
	category, err := Classify(item)
	if err != nil {
		return nil, err
	}
	if category == CategoryPrimitive {
		return nil, nil
	}

	coords := naming.TypeCoordinatesFor(item)
	unit := &EmissionUnit{
		Coordinates: coords,
		Category:    category,
		Doc:         item.Schema.Description,
	}

	fileName := item.FileName
	domain := item.Domain
	ownName := item.SchemaName

	switch category {
	case CategoryAlias:
		goType, err := lowerRef(reg, domain, item.Schema)
		if err != nil {
			return nil, err
		}
		unit.Alias = &AliasUnit{GoType: goType}
	case CategoryEnumNewtype:
		isOneOf := len(item.Schema.OneOf) > 0
		enumUnit, err := EmitEnumNewtype(reg, domain, fileName, ownName, item.Schema, isOneOf)
		if err != nil {
			return nil, err
		}
		unit.EnumNewtype = enumUnit
	case CategoryEnumUnit:
		unit.EnumUnit = EmitEnumUnit(item.Schema)
	case CategoryStruct:
		structUnit, err := EmitStruct(reg, domain, fileName, ownName, item.Schema)
		if err != nil {
			return nil, err
		}
		unit.Struct = structUnit
	}

	return unit, nil
}
