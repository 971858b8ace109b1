// SPDX-License-Identifier: MPL-2.0

// Package issue provides errors that carry a nested cause and remediation hints,
// so a failed pipeline step tells the operator what to change before re-running it.
package issue
