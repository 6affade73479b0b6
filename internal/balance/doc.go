// Package balance checks that tracked markup tags are balanced.
//
// Two scanners are provided:
//   - StackScanner keeps a stack of open tags and reports tags left open,
//     closers that match nothing, and tags closed implicitly by an outer closer.
//   - CounterScanner keeps a signed running balance for a single tag and
//     reports every line where more closers than openers have been seen.
//
// Both consume model.TagEvent sequences from package lexer, so neither
// depends on how tags are recognized. The file-level entry points Audit,
// Check and Fragments read the file, pick the lexer and run the scanner.
//
// Recovery from malformed input is heuristic and always named explicitly:
// RecoveryTruncateOnMismatch / RecoveryStrict for the stack scanner and
// NegativeResetToZero / NegativeKeep for the counter. None of them claims to
// reconstruct the intended structure; they only let the scan continue with
// useful output.
package balance
