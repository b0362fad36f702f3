// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides recording configuration for flipbook binaries.
//
// A [Recording] starts from the defaults of its entry mode ([Default] for
// the rhythmic recorder, [HeadlessDefault] for headless draining), is
// optionally merged with a single YAML file, and finally with any
// command-line flags the user set explicitly. The file is named by the
// --config flag or the FLIPBOOK_CONFIG environment variable ([Path]);
// there is no discovery and no other environment override, so a fixture
// recorded in CI uses exactly the geometry the file and flags state.
//
// The output path supports ${VAR} and ${VAR:-default} expansion.
//
// This package depends on no other flipbook packages.
package config
