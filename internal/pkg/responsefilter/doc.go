// Package responsefilter narrows a page of form submissions down to the ones
// matching a client filter expression and re-paginates the survivors.
//
// The default behaviour reproduces the submissions proxy as clients know it:
//
//   - An answer survives when it satisfies at least one clause.
//   - A response survives when the number of surviving answers equals the
//     number of clauses, and it is returned carrying only those answers.
//   - Survivors are sliced to [offset, offset+limit) only when the limit differs
//     from the upstream maximum and the offset is non-zero.
//
// MatchStrict and PaginateAlways are the stricter readings of the same
// contract (every clause matched by some answer, and unconditional slicing)
// for consumers that opt into them.
package responsefilter
