/*
   Copyright 2025 The git-journal Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command git-journal is the thin CLI surface spec §1/§6 places out of the
// core's scope: it parses flags, wires the core packages together, and
// exits with the status code the core's errors imply.
package main

import "github.com/dirpx/gitjournal/cmd/git-journal/commands"

func main() {
	commands.Execute()
}
