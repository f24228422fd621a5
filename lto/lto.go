// Package lto defines the boundary spec.md §6 calls "Core → LTO
// compiler": after all files are ingested, the engine presents its
// bitcode inputs to a Compiler collaborator and expects back one or
// more native objects (Result), each listing the names it defines; the
// engine's AdoptLTOResult turns the Bitcode record of each listed name
// into a Regular record. Results carry no object buffer and never
// produce Common records.
// The compiler itself is out of scope per spec.md §1 ("the LTO
// compiler back-end" is an external collaborator) — this package only
// shapes the interface.
//
// The interface is expressed in terms of *ir.Module from
// github.com/llir/llvm/ir (ComedicChimera-chai go.mod, indirect
// dependency) rather than interface{} or a raw byte buffer: it gives
// the bitcode/LTO boundary the same concreteness a real linker's LLVM
// bitcode reader would have, without this module taking on the actual
// IR-to-object compilation.
package lto

import "github.com/llir/llvm/ir"

// Unit is one bitcode input presented to the compiler, carrying the
// name the resolution engine used when this file registered its
// symbols, so the compiler's output can be attributed back.
type Unit struct {
	FileName string
	Module   *ir.Module
}

// Result is one native object produced by the compiler. ObjectName is
// a synthesized file identity (e.g. "lto.o") used for diagnostics once
// the result's symbols re-enter resolution; Symbols lists which names
// this object defines, for the engine's AdoptLTOResult bookkeeping.
type Result struct {
	ObjectName string
	Symbols    []string
}

// Compiler performs link-time code generation. Given the set of
// bitcode units collected by the engine, it returns one or more
// synthesized native objects.
type Compiler interface {
	Compile(units []Unit) ([]Result, error)
}
