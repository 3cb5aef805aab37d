// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package cache

import (
	"github.com/c2h5oh/datasize"
)

// DefaultConfig is the default configuration of the view cache.
var DefaultConfig = Config{
	Size: uint64(100 * datasize.MB),
}

// Config holds the settings of the view cache.
type Config struct {
	Size uint64
}

// WithSize sets the maximum total size of the cached results, in bytes.
func WithSize(size uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.Size = size
	}
}
