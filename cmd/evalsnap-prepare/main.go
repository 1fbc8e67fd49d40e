package main

import (
	"flag"

	"evalsnap/internal/modkit"
	"evalsnap/internal/modkit/module"

	preparedom "evalsnap/internal/services/prepare/domain"
	preparemod "evalsnap/internal/services/prepare/module"
)

func main() {
	flag.Parse()
	ctx, deps := modkit.Boot("prepare")

	m, err := preparemod.New(deps)
	if err != nil {
		modkit.Finish(ctx, err, "prepare: bad configuration")
		return
	}

	_, err = module.MustPortsOf[preparedom.RunnerPort](m).Run(ctx)
	modkit.Finish(ctx, err, "prepare failed")
}
