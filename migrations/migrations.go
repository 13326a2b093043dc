// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package migrations embeds the goose SQL migrations for the household schema.
package migrations

import "embed"

//go:embed *.sql
var EmbedMigrations embed.FS
