package main

import (
	"flag"

	"evalsnap/internal/modkit"
	"evalsnap/internal/modkit/module"

	convertdom "evalsnap/internal/services/convert/domain"
	convertmod "evalsnap/internal/services/convert/module"
)

func main() {
	flag.Parse()
	ctx, deps := modkit.Boot("convert")

	m, err := convertmod.New(deps)
	if err != nil {
		modkit.Finish(ctx, err, "convert: bad configuration")
		return
	}

	_, err = module.MustPortsOf[convertdom.RunnerPort](m).Run(ctx)
	modkit.Finish(ctx, err, "convert failed")
}
