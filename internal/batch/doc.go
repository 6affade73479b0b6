// Package batch runs one scan per file concurrently.
//
// Scans are independent: no state is shared between them and a failing
// file does not stop the others. Results come back in input order.
package batch
