package templates

import qt "github.com/valyala/quicktemplate"

// WatchNGen renders reactive/watchn.go: typed WatchN wrappers over the
// explicit-dependency Watch core, for arities 1 through count.
func WatchNGen(count int) string {
	bb := qt.AcquireByteBuffer()
	w := qt.AcquireWriter(bb)
	n := w.N()

	n.S("// Code generated by lumen codegen; DO NOT EDIT.\n")
	n.S("\n")
	n.S("package reactive\n")

	for arity := 1; arity <= count; arity++ {
		types := prefixedStrings("T", arity)

		n.S("\n")
		n.S("func Watch")
		n.D(arity)
		n.S("[")
		n.S(types)
		n.S(" any](rt *Runtime, ")
		n.S(readerParams(arity))
		n.S(", fn func(")
		n.S(types)
		n.S(") (Cleanup, error)) (*Runner, error) {\n")
		n.S("\treturn Watch(rt, []Reader{\n")
		for i := 0; i < arity; i++ {
			n.S("\t\tfunc() any { return r")
			n.D(i)
			n.S("() },\n")
		}
		n.S("\t}, func(vals []any) (Cleanup, error) {\n")
		n.S("\t\treturn fn(\n")
		for i := 0; i < arity; i++ {
			n.S("\t\t\tvals[")
			n.D(i)
			n.S("].(T")
			n.D(i)
			n.S("),\n")
		}
		n.S("\t\t)\n")
		n.S("\t})\n")
		n.S("}\n")
	}

	qt.ReleaseWriter(w)
	out := string(bb.B)
	qt.ReleaseByteBuffer(bb)
	return out
}
