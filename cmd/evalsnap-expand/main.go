package main

import (
	"flag"

	"evalsnap/internal/modkit"
	"evalsnap/internal/modkit/module"

	expanddom "evalsnap/internal/services/expand/domain"
	expandmod "evalsnap/internal/services/expand/module"
)

func main() {
	flag.Parse()
	ctx, deps := modkit.Boot("expand")

	m, err := expandmod.New(deps)
	if err != nil {
		modkit.Finish(ctx, err, "expand: bad configuration")
		return
	}

	_, err = module.MustPortsOf[expanddom.RunnerPort](m).Run(ctx)
	modkit.Finish(ctx, err, "expand failed")
}
