package policy

import (
	"slices"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

// Exists reports whether the member named by sig is actually declared on its
// type, as far as types knows. Unknown types and wildcard members do not
// exist. This is advisory and plays no part in any decision.
//
// An instance method declared by a supertype or interface does not exist on
// the subtype: the definition must name the declaring type instead.
func Exists(sig entities.Signature, types ports.TypeResolver) bool {
	if types == nil || sig.IsWildcard() {
		return false
	}
	switch sig.Kind() {
	case entities.KindMethod:
		return instanceMethodExists(types, sig.TypeName(), sig.Member(), sig.Params(), true, map[string]bool{})
	case entities.KindStaticMethod:
		info, ok := types.ResolveType(sig.TypeName())
		if !ok {
			return false
		}
		m, ok := declaredMethod(info, sig.Member(), sig.Params())
		return ok && m.Static
	case entities.KindNew:
		info, ok := types.ResolveType(sig.TypeName())
		if !ok {
			return false
		}
		return slices.ContainsFunc(info.Constructors, func(params []string) bool {
			return slices.Equal(params, sig.Params())
		})
	case entities.KindField, entities.KindStaticField:
		return fieldVisible(types, sig.TypeName(), sig.Member(), map[string]bool{})
	default:
		return false
	}
}

func instanceMethodExists(types ports.TypeResolver, typeName, name string, params []string, start bool, seen map[string]bool) bool {
	if seen[typeName] {
		return false
	}
	seen[typeName] = true

	info, ok := types.ResolveType(typeName)
	if !ok {
		return false
	}
	if info.Super != "" && instanceMethodExists(types, info.Super, name, params, false, seen) {
		return !start
	}
	for _, i := range info.Interfaces {
		if instanceMethodExists(types, i, name, params, false, seen) {
			return !start
		}
	}
	m, ok := declaredMethod(info, name, params)
	return ok && !m.Static
}

func declaredMethod(info *entities.TypeInfo, name string, params []string) (entities.MethodInfo, bool) {
	for _, m := range info.Methods {
		if m.Name == name && slices.Equal(m.Params, params) {
			return m, true
		}
	}
	return entities.MethodInfo{}, false
}

// fieldVisible looks for a field on the type and then its supertypes.
func fieldVisible(types ports.TypeResolver, typeName, name string, seen map[string]bool) bool {
	if seen[typeName] {
		return false
	}
	seen[typeName] = true

	info, ok := types.ResolveType(typeName)
	if !ok {
		return false
	}
	for _, f := range info.Fields {
		if f.Name == name {
			return true
		}
	}
	for _, i := range info.Interfaces {
		if fieldVisible(types, i, name, seen) {
			return true
		}
	}
	return info.Super != "" && fieldVisible(types, info.Super, name, seen)
}
