// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides structured logging utilities for kaideploy.
//
// It wraps the standard library slog package with deploy-tool defaults:
// structured JSON logging to stderr, environment-based log level
// configuration (LOG_LEVEL), automatic module and version context, and
// source location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("kaideploy", "v1.0.0")
//
//	    slog.Info("resolving cluster context", "target", "gke")
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("kaideploy", "v1.0.0", "debug")
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (debug, info, warn, error; defaults to info).
package logging
