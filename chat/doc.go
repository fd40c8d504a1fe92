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


// Package chat implements the conversational side of the portfolio engine:
// the session history, the socket channel to a remote chat service, and the
// dispatcher that chooses a reply strategy per user message.
//
// The dispatcher tries, in order, the first available channel:
//
//  1. an open socket connection to the remote chat service
//  2. a configured generative responder
//  3. local lexical search over the portfolio content
//
// Every failure path resolves to a user-visible reply; no error from a
// remote collaborator escapes to the presentation layer.
package chat
