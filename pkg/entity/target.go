// Copyright (c) 2025, Xiaofeng Zu.  All rights reserved.
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

package entity

// TargetSpec declares a phony or command target.
type TargetSpec struct {
	Name        string
	Description string
	Command     string
	Deps        []string
}

// Target is a named build-script entry point.
type Target struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Command     string   `json:"command,omitempty" yaml:"command,omitempty"`
	Deps        []string `json:"deps,omitempty" yaml:"deps,omitempty"`
}

// IsPhony reports whether the target only aggregates its dependencies.
func (t *Target) IsPhony() bool {
	return t.Command == ""
}
