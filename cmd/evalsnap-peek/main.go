package main

import (
	"flag"

	"evalsnap/internal/modkit"
	"evalsnap/internal/modkit/module"

	peekdom "evalsnap/internal/services/peek/domain"
	peekmod "evalsnap/internal/services/peek/module"
)

func main() {
	rows := flag.Int("n", 0, "rows to show (default 5)")
	flag.Parse()
	ctx, deps := modkit.Boot("peek")

	m, err := peekmod.New(deps, *rows)
	if err != nil {
		modkit.Finish(ctx, err, "peek: bad configuration")
		return
	}

	_, err = module.MustPortsOf[peekdom.RunnerPort](m).Run(ctx)
	modkit.Finish(ctx, err, "peek: cannot read parquet")
}
