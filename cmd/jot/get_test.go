package main

import (
	"testing"

	"github.com/jotfmt/jot/ir"
)

func TestDescend(t *testing.T) {
	inner := ir.NewObject()
	inner.PutInt("port", 8080)
	root := ir.NewObject()
	root.Put("server", ir.FromObject(inner))
	node := ir.FromObject(root)

	if got := descend(node, []string{"server", "port"}); got == nil || *got.Int64 != 8080 {
		t.Errorf("server.port: %+v", got)
	}
	if descend(node, []string{"server", "host"}) != nil {
		t.Error("absent leaf should be nil")
	}
	if descend(node, []string{"server", "port", "deeper"}) != nil {
		t.Error("descent through a scalar should be nil")
	}
	if descend(nil, []string{"x"}) != nil {
		t.Error("nil root should be nil")
	}
}
