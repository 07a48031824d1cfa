// SPDX-License-Identifier: MIT

// Command tempconcat concatenates temporal network trace files.
//
// Usage:
//
//	tempconcat concat [-format yaml|json] [-in-format yaml|json] [-o out] file...
//	tempconcat gen -kind snapshots|events [-n 10] [-steps 20] [-p 0.1] [-seed 1] [-o out]
//	tempconcat schema
//
// concat decodes the files concurrently and merges them in command-line order;
// with no file it reads stdin. schema prints the JSON Schema of a trace file.
//
// Environment:
//
//	TEMPCONCAT_LOG_LEVEL     debug|info|warn|error (default info)
//	TEMPCONCAT_FORMAT        default output/input format (default yaml)
//	TEMPCONCAT_METRICS_FILE  write Prometheus text-file metrics here after concat
//	TEMPCONCAT_SEED          default generator seed (default 1)
//	TEMPCONCAT_PARALLELISM   max input files decoded at once (default 4)
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdin, os.Stdout, os.Stderr))
}
