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


// Package gemini implements ai.Responder against the generative-language
// REST API:
//
//	POST <base>/v1beta/models/<model>:generateContent?key=<key>
//
// The client owns the full wire contract, including the fixed substitute
// reply returned when a response carries no usable text.
package gemini
