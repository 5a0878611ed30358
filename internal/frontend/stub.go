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

//go:build !cgo

package frontend

import (
	"context"
	"go/token"

	"fillmore-labs.com/constguard/internal/cxx"
)

// Parse is unavailable without cgo.
func Parse(_ context.Context, _ *token.FileSet, _ string, _ []byte, _ Options) (*cxx.Unit, error) {
	return nil, ErrNoCGO
}

// IsAvailable reports whether C++ parsing is supported by this build.
func IsAvailable() bool {
	return false
}
