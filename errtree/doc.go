/*
   Copyright 2025 The ENVX Authors

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

// Package errtree models the raw, arbitrarily nested error structures
// produced by a request-validation layer and flattens them into a canonical
// ordered list of normalized records.
//
// The tree is a tagged union over five shapes (single leaf, flat leaf list,
// keyed map, list of leaf lists, list of maps) built through strictly typed
// constructors, so shape classification happens at construction and
// heterogeneous sequences cannot be expressed. Normalize walks the tree
// depth-first, preserving insertion order at every level, and emits one
// record per leaf group with the path of field keys and indices that locates
// it.
package errtree
