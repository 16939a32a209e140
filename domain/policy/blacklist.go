package policy

import (
	"slices"

	"github.com/reglet-dev/script-sandbox/domain/entities"
)

// Signatures that no definition file can make acceptable. They are flagged to
// approval tooling and never offered for approval.
var (
	permanentlyBlacklistedMethods = []string{
		"method java.lang.Runtime exit int",
		"method java.lang.Runtime halt int",
	}

	permanentlyBlacklistedStaticMethods = []string{
		"staticMethod java.lang.System exit int",
		"staticMethod java.lang.System getProperties",
		"staticMethod java.lang.System getProperty java.lang.String",
		"staticMethod java.lang.System getProperty java.lang.String java.lang.String",
		"staticMethod java.lang.System getenv",
		"staticMethod java.lang.System getenv java.lang.String",
	}

	permanentlyBlacklistedConstructors = []string{
		"new org.kohsuke.groovy.sandbox.impl.Checker$SuperConstructorWrapper java.lang.Object[]",
		"new org.kohsuke.groovy.sandbox.impl.Checker$ThisConstructorWrapper java.lang.Object[]",
	}
)

// IsPermanentlyBlacklistedMethod reports whether m, called as an instance
// method, is permanently blacklisted.
func IsPermanentlyBlacklistedMethod(m *entities.Method) bool {
	return slices.Contains(permanentlyBlacklistedMethods, entities.MethodOperation(m).String())
}

// IsPermanentlyBlacklistedStaticMethod reports whether m, called as a static
// method, is permanently blacklisted.
func IsPermanentlyBlacklistedStaticMethod(m *entities.Method) bool {
	return slices.Contains(permanentlyBlacklistedStaticMethods, entities.StaticMethodOperation(m).String())
}

// IsPermanentlyBlacklistedConstructor reports whether c is permanently blacklisted.
func IsPermanentlyBlacklistedConstructor(c *entities.Constructor) bool {
	return slices.Contains(permanentlyBlacklistedConstructors, entities.ConstructorOperation(c).String())
}

// IsPermanentlyBlacklisted reports whether the canonical signature text is
// permanently blacklisted, and so shouldn't show up in the pending approval list.
func IsPermanentlyBlacklisted(signature string) bool {
	return slices.Contains(permanentlyBlacklistedMethods, signature) ||
		slices.Contains(permanentlyBlacklistedStaticMethods, signature) ||
		slices.Contains(permanentlyBlacklistedConstructors, signature)
}

// PermanentlyBlacklisted returns every permanently blacklisted signature.
func PermanentlyBlacklisted() []string {
	var all []string
	all = append(all, permanentlyBlacklistedMethods...)
	all = append(all, permanentlyBlacklistedStaticMethods...)
	all = append(all, permanentlyBlacklistedConstructors...)
	return all
}
