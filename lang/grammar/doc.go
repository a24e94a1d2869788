// Package grammar defines context-free grammars in Chomsky normal form and
// the fixed grammar of parenthesized lambda expressions recognized by this
// module.
//
// Nonterminals are the fixed enumeration [S] through [H]. Every
// deterministic choice made over symbols, such as picking a root or a child
// during tree reconstruction, follows that enumeration order; [Set] iterates
// in the same order.
//
// Terminal rules carry a [Matcher]. Patterns are compiled with
// github.com/dlclark/regexp2, which supports the negative lookahead used by
// [Identifier]; a pattern that fails to compile matches by string equality.
package grammar
