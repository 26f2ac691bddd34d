package main

import (
	"context"
	"fmt"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/internal/searchpath"
	"github.com/m-cat/over/log"
	"github.com/m-cat/over/over"
	"github.com/m-cat/over/writer"
)

// evalCmd parses a file, or an ad hoc expression bound to a throwaway
// field, and prints the resulting value.
type evalCmd struct {
	File string `help:"OVER file to evaluate" short:"f" type:"existingfile" xor:"input"`
	Expr string `arg:"" help:"An OVER expression to evaluate" optional:"" xor:"input"`

	YAML   bool   `help:"Print the result as debug YAML instead of OVER text" name:"debug-yaml"`
	Source string `help:"Print the file:line:col a top-level field was bound at, instead of its value" name:"source"`
}

func (e *evalCmd) Run(ctx context.Context, top *cli, logger log.Logger) error {
	loader := searchpath.Loader{List: searchpath.New(top.IncludePath...)}
	opts := []over.Option{over.WithLoader(loader), over.WithLogger(logger)}

	var (
		result  over.Value
		rootObj *over.Obj
	)

	switch {
	case e.File != "":
		obj, err := over.ParseFile(e.File, opts...)
		if err != nil {
			return err
		}

		rootObj = obj
		result = over.FromObj(obj)

	case e.Expr != "":
		obj, err := over.ParseString("_: "+e.Expr, "<expr>", opts...)
		if err != nil {
			return err
		}

		v, ok := obj.Get("_")
		if !ok {
			return errs.ErrUnresolvedName.With()
		}

		result = v

	default:
		return errs.ErrUnexpectedToken.With()
	}

	if e.Source != "" {
		if rootObj == nil {
			return errs.ErrUnresolvedName.With()
		}

		_, src, ok := rootObj.GetWithSource(e.Source)
		if !ok {
			return errs.ErrUnresolvedName.With()
		}

		fmt.Printf("%s:%d:%d\n", src.File, src.Line, src.Col)

		return nil
	}

	if e.YAML {
		out, err := writer.FormatYAML(result)
		if err != nil {
			return err
		}

		fmt.Print(out)

		return nil
	}

	fmt.Println(over.Write(result))

	return nil
}
