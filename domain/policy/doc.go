// Package policy decides whether script code may perform reflective
// operations.
//
// The enumerating evaluator scans per-kind signature lists and memoizes each
// decision under the canonical signature text. Static builds those lists from
// definition files, DenyList negates a Static, LoaderEvaluator trusts one
// loading unit, PermitAll allows everything, and AnyOf/AllOf compose them.
// EnvGate is a separate, additive allowance for reading selected environment
// variables.
package policy
