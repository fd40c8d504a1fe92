// Copyright 2025 Anil Kumar Reddy K
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


// Package content holds the static portfolio dataset: projects, skills,
// work experience, social links, and the profile.
//
// The Store is immutable after construction. Every downstream structure
// (the search index, generative prompts) is derived from it and must be
// rebuilt, never patched, if the dataset changes. Accessors return copies
// so callers cannot mutate the underlying collections.
package content
