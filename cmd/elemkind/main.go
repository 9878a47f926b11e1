// Command elemkind runs the elemkind analyzer as a vet tool.
//
//	go vet -vettool=$(which elemkind) -elemkind.config=elemkind.yaml ./...
package main

import (
	"github.com/qawatake/mixedconcat/elemkind"
	"golang.org/x/tools/go/analysis/unitchecker"
)

func main() {
	unitchecker.Main(elemkind.Analyzer)
}
