package definition

import (
	"embed"
	"fmt"
	"path"
	"slices"

	"github.com/reglet-dev/script-sandbox/domain/ports"
)

//go:embed builtin/*.whitelist
var builtinFS embed.FS

// BuiltinNames lists the definitions shipped with the module.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name()[:len(e.Name())-len(path.Ext(e.Name()))])
	}
	slices.Sort(names)
	return names
}

// Builtin returns the shipped definition called name.
func Builtin(name string) (ports.DefinitionSource, error) {
	if !slices.Contains(BuiltinNames(), name) {
		return nil, fmt.Errorf("unknown builtin definition %q", name)
	}
	return NewFSSource(builtinFS, path.Join("builtin", name+".whitelist")), nil
}
