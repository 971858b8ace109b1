// SPDX-License-Identifier: MPL-2.0

// Package ghaction publishes step outputs and job variables to the invoking
// pipeline.
//
// Runner speaks the GitHub Actions runner protocol: values are appended to the
// files named by GITHUB_OUTPUT, GITHUB_ENV and GITHUB_STEP_SUMMARY using the
// multi-line heredoc format, with a fallback to workflow commands on stdout for
// runners that predate file commands. DotenvFile writes the same values to a
// dotenv file for local runs.
package ghaction
