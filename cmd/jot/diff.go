package main

import (
	"fmt"

	"github.com/jotfmt/jot/encode"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	aNode, err := cfg.readValue(args[0])
	if err != nil {
		return err
	}
	bNode, err := cfg.readValue(args[1])
	if err != nil {
		return err
	}
	indent := cfg.Indent
	if indent == 0 {
		// diffs of compact text are unreadable
		indent = 2
	}
	a := encode.MustString(aNode, encode.Indent(indent))
	b := encode.MustString(bNode, encode.Indent(indent))

	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.Color {
		_, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs)))
		return err
	}
	for _, d := range diffs {
		marker := ""
		switch d.Type {
		case diffpatch.DiffDelete:
			marker = "[-" + d.Text + "-]"
		case diffpatch.DiffInsert:
			marker = "[+" + d.Text + "+]"
		default:
			marker = d.Text
		}
		if _, err := cc.Out.Write([]byte(marker)); err != nil {
			return err
		}
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
