// Copyright 2026 Naren Yellavula
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

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered guide pages stay warm for half an hour.
	guideCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	guideCacheCleanup = 5 * time.Minute
)

// NewGuideCache creates a cache for rendered markdown pages.
func NewGuideCache() *cache.Cache {
	return cache.New(guideCacheExpiration, guideCacheCleanup)
}
