// Package lang finds the free variables of parenthesized lambda expressions.
//
// # Language
//
// An expression is a variable, an application of two expressions, or a
// lambda abstraction binding one variable:
//
//	x
//	(f x)
//	(lambda (x) (f x))
//
// Variables are letters optionally joined by single hyphens (foo-bar); the
// word lambda is reserved. Any other character in the input is ignored.
//
// # Pipeline
//
// [Analyze] runs four stages, each in its own package:
//
//  1. [lexer.Tokenize] splits the input into tokens.
//  2. [cyk.Recognize] fills the CYK table over [grammar.Lambda] and decides
//     acceptance.
//  3. [tree.Build] reconstructs one parse tree from the accepted table.
//  4. [scope.Free] lists the variable occurrences not bound by an enclosing
//     lambda.
//
// Scoping is purely by name. Each lambda removes every occurrence of its
// variable from its body, so (lambda (x) (lambda (y) x)) has no free
// variables and shadowing is not distinguished from reuse.
//
// # Cases
//
// Batch input holds a positive case count followed by one expression per
// line. [Cases] reads it, [AnalyzeAll] analyzes the cases concurrently, and
// [FormatCase] renders the "Case #k: v1 v2" line printed for each accepted
// case.
package lang
