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


// Package ai provides the generative-reply abstraction used by the chat
// dispatcher.
//
// The package defines the Responder interface and the prompt construction
// that grounds a generative backend in the portfolio content. It follows the
// dependency inversion principle: the dispatcher depends on the Responder
// abstraction, never on a concrete backend.
//
// # Implementation Packages
//
//   - ai/gemini: production implementation speaking the generative-language
//     REST contract
//   - ai/openai: implementation for OpenAI-compatible (typically
//     self-hosted) backends
//   - ai/mock: test doubles for unit testing without external dependencies
package ai
