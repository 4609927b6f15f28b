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

// Package apis defines the public Go-level contracts for enverr exception
// handling.
//
// The goal of this package is to provide *small, composable* interfaces that
// other enverr packages can depend on without importing the concrete
// exception implementation (which lives in the module root).
//
// In other words: this package is the "surface" that the classifier, the
// assembler, and transport adapters can target. Concrete exception types
// should implement these interfaces, but callers should not rely on the
// concrete types.
//
// Each interface models one optional capability an exception-like value may
// expose (a type override, an HTTP status, a retry wait, ...). Absence of a
// capability is expressed by not implementing the interface, or by the
// explicit ok/zero conventions documented per method — never by runtime
// field probing.
//
// This package must remain lightweight and should not introduce heavy
// dependencies, so it only contains interfaces and very small view types.
package apis
