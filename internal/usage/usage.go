// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package usage finds the mutations and references of declarations in a function body.
package usage

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/constguard/internal/cxx"
)

// Collect analyzes body and returns its mutations and references.
func Collect(ctx context.Context, body cxx.Node) Result {
	defer trace.StartRegion(ctx, "Usage").End()

	var c collector

	if body != nil {
		c.inspectChanges(body)
		c.inspectReferences(body)
	}

	return c.result()
}

// CollectFunction analyzes the body of a function definition.
func CollectFunction(ctx context.Context, fn *cxx.Decl) Result {
	if fn == nil || fn.Body == nil {
		return Result{}
	}

	return Collect(ctx, fn.Body)
}
