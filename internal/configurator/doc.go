// Package configurator binds untyped key-value configuration onto the typed
// fields of a configuration struct.
//
// Values come from an optional KEY=VALUE file and from the process
// environment. The file always wins for a key it defines; its keys are
// matched case-insensitively while environment lookups keep the exact case.
//
// Fields are bound in declaration order. Directives are given through the
// `cfg` struct tag (see [TagName]). Predeclared booleans, strings, integers
// and floats are converted directly; every other type needs an [Adapter]
// registered in the [Adapters] passed to [New] or [Open].
//
// Boolean conversion is permissive: "true" in any case is true, anything else
// is false and never an error.
package configurator
