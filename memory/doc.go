// Package memory defines the capability contract a container uses to obtain
// storage and to start and end element lifetimes, together with the providers
// shipped with fcvec:
//
//   - Heap: the Go heap, the default for every container.
//   - Limited: a slot budget in front of another provider, failing with
//     OUT_OF_MEMORY once the budget is spent.
//   - Instrumented: counts every call into a Stats value and can inject
//     allocation or construction failures.
//
// Providers are values. Copying one copies the capability, and any state it
// refers to (a Stats counter, a budget) is shared between the copies.
package memory
