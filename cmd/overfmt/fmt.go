package main

import (
	"context"
	"fmt"

	"github.com/m-cat/over/internal/searchpath"
	"github.com/m-cat/over/log"
	"github.com/m-cat/over/over"
)

// fmtCmd rewrites one or more OVER files to their canonical textual form.
type fmtCmd struct {
	Files   []string `arg:"" help:"OVER file(s) to format" type:"existingfile"`
	InPlace bool     `help:"Rewrite the file(s) in place instead of printing to stdout" name:"write" short:"w"`
}

func (f *fmtCmd) Run(ctx context.Context, top *cli, logger log.Logger) error {
	loader := searchpath.Loader{List: searchpath.New(top.IncludePath...)}

	for _, path := range f.Files {
		obj, err := over.ParseFile(path, over.WithLoader(loader), over.WithLogger(logger))
		if err != nil {
			return err
		}

		out := over.Write(over.FromObj(obj))

		if f.InPlace {
			if err := over.WriteFile(over.FromObj(obj), path); err != nil {
				return err
			}

			continue
		}

		fmt.Println(out)
	}

	return nil
}
