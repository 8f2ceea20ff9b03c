package main

import (
	"fmt"
	"strings"

	"github.com/jotfmt/jot/encode"
	"github.com/jotfmt/jot/ir"

	"github.com/scott-cotton/cli"
)

func getRun(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a key argument", cli.ErrUsage)
	}
	path := strings.Split(args[0], ".")
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := cfg.readValue(arg)
		if err != nil {
			return err
		}
		res := descend(node, path)
		if res == nil {
			// absent member: no output, no complaint
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

func descend(node *ir.Node, path []string) *ir.Node {
	for _, key := range path {
		if node == nil || node.Type != ir.ObjectType {
			return nil
		}
		node = node.Object.Opt(key)
	}
	return node
}
