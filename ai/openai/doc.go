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


// Package openai implements ai.Responder for OpenAI-compatible chat APIs,
// including self-hosted servers such as Ollama or vLLM. It is the drop-in
// alternative to ai/gemini when the portfolio assistant runs against a local
// model.
package openai
