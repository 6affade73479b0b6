// Package model defines the data structures shared by the lexers, the balance
// scanners and the report writers.
//
// This package contains the following main types:
//   - TagEvent: One open, close or self-close occurrence found by a lexer
//   - StackEntry: An opened tag that is still waiting for its closer
//   - Diagnostic: One finding produced by a scanner
//   - AuditReport: The result of the stack scanner
//   - BalanceReport: The result of the counting scanner
//   - FragmentReport: The fragment markers found in a file
//
// Models live in their own package so that lexer, balance and report can all
// use them without import cycles. Every report type is serializable to JSON.
package model
