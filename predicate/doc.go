// Package predicate holds the injected guard vocabulary: names of domain
// predicates whose truth value pins down the nullability of their receiver,
// and the paired-indicator map relating presence flags to the nullable
// properties they vouch for.
//
// The package is pure data with lookups. The guard classifier consults it
// but carries no vocabulary of its own, so teaching the analysis a new
// predicate is a config change, never a code change.
package predicate
