// Package expr provides the algebraic expression tree for the derive module.
//
// # Overview
//
// An expression is a recursive tagged union over sums, products, quotients,
// powers, the exponential and natural logarithm functions, variables, and
// arbitrary-precision integer literals. All expressions (whether parsed from
// text, created programmatically, or produced by differentiation) are
// represented as Expr trees.
//
// The tree is a pure value type: nodes own their children, transformations
// build new trees and never mutate their input in place.
//
// # Variable identities
//
// Expr is generic over the identity type used for variables. The parser
// builds Expr[string] trees keyed by source names; package namespace interns
// those into Expr[int] trees for everything downstream. Two variables denote
// the same entity exactly when their identities are equal.
//
// # Canonical form
//
// Reduce maps a tree to its canonical form: associative operators flattened,
// literal children folded into at most one integer placed last, integer
// fractions in lowest terms, and degenerate zero- or one-child aggregates
// collapsed. Simplify layers like-term and like-factor collection on top of
// Reduce; both are idempotent.
//
// # Related Packages
//
//   - github.com/derivelab/derive/parse - parse text to expressions
//   - github.com/derivelab/derive/encode - render expressions as text or LaTeX
//   - github.com/derivelab/derive/eval - numeric evaluation for plotting
package expr
