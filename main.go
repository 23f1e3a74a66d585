/*
 * Copyright (c) 2025, The Ember Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/ember-lang/ember/cmd/ember"
)

func main() {
	ember.Execute()
}
