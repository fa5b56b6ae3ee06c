// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal browser's process lifecycle.
//
// It ties the catalog client and the terminal UI together and stops the UI
// on termination signals.
package client
