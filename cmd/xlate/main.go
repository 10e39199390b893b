package main

import (
	"flag"
	"fmt"
	"os"

	"xlate/internal/emitter"
	"xlate/internal/importer"
	"xlate/internal/rewriter"
	"xlate/pkg/errors"
	"xlate/pkg/model"
	"xlate/pkg/script"
)

func main() {
	fmt.Println("--- xlate ---")

	minify := flag.Bool("minify", false, "use minified type/member names")
	omitDowncasts := flag.Bool("omit-downcasts", false, "elide Script.cast runtime checks")
	omitNullableChecks := flag.Bool("omit-nullable-checks", false, "set the emitter's OmitNullableChecks flag (no builder reads it)")
	flag.Parse()

	imp := importer.New(importer.Config{Minify: *minify})
	em := emitter.New(emitter.Config{
		OmitDowncasts:      *omitDowncasts,
		OmitNullableChecks: *omitNullableChecks,
	}, imp)

	object, greeter := demoTypes()
	imp.Prepare(object)
	imp.Prepare(greeter)

	if errors.HasErrors(imp.Diagnostics()) {
		errors.DisplayDiagnostics(imp.Diagnostics())
		os.Exit(1)
	}

	fmt.Printf("Greeter -> %s\n", imp.GetTypeSemantics(greeter).DottedScriptName)

	fmt.Println("--- sample downcast ---")
	call := em.Downcast(&script.Ident{Name: "obj"}, object, greeter)
	fmt.Println(call.String())

	fmt.Println("--- sample state-machine rewrite ---")
	rewritten := rewriter.RewriteBody(demoLabeledBody())
	fmt.Println(rewritten.String())

	fmt.Println("Translation successful.")
}

// demoTypes builds a tiny two-type fixture (a root Object and a Greeter
// class deriving from it) standing in for what a real attribute-reflection
// front end would hand the core.
func demoTypes() (object, greeter *model.FixtureType) {
	object = &model.FixtureType{NameV: "Object", NamespaceV: "System", AssemblyV: "mscorlib", KindV: model.KindClass}
	greeter = &model.FixtureType{
		NameV:        "Greeter",
		NamespaceV:   "Demo",
		AssemblyV:    "Demo",
		KindV:        model.KindClass,
		DirectBasesV: []model.Type{object},
		AllBasesV:    []model.Type{object},
	}
	return object, greeter
}

// demoLabeledBody builds a small block with a conditional goto and a
// trailing label: two statements, a conditional jump past a third, and a
// label marking where it lands.
func demoLabeledBody() *script.Block {
	return &script.Block{Stmts: []script.Stmt{
		&script.ExprStmt{Expr: &script.Call{Callee: &script.Ident{Name: "a"}}},
		&script.ExprStmt{Expr: &script.Call{Callee: &script.Ident{Name: "b"}}},
		&script.If{
			Test: &script.Ident{Name: "c"},
			Then: &script.Goto{Label: "lbl2"},
		},
		&script.ExprStmt{Expr: &script.Call{Callee: &script.Ident{Name: "d"}}},
		&script.Labeled{Label: "lbl2", Stmt: &script.ExprStmt{Expr: &script.Call{Callee: &script.Ident{Name: "e"}}}},
	}}
}
