// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive recipe client runtime.
//
// It restores the persisted session, wires the terminal UI to the client
// services, and runs the favorites reconciliation and catalog refresh jobs
// for the lifetime of the process.
package client
