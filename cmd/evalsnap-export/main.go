package main

import (
	"flag"

	"evalsnap/internal/modkit"
	"evalsnap/internal/modkit/module"

	exportdom "evalsnap/internal/services/export/domain"
	exportmod "evalsnap/internal/services/export/module"
)

func main() {
	var (
		fromParquet = flag.Bool("parquet", false, "read the parquet export instead of the question table")
		out         = flag.String("out", "", "output document (default public/questions.json)")
	)
	flag.Parse()
	ctx, deps := modkit.Boot("export")

	var overrides exportmod.Options
	if *fromParquet {
		overrides.Source = "parquet"
	}
	overrides.Output = *out

	m, err := exportmod.New(deps, overrides)
	if err != nil {
		modkit.Finish(ctx, err, "export: bad configuration")
		return
	}

	_, err = module.MustPortsOf[exportdom.RunnerPort](m).Run(ctx)
	modkit.Finish(ctx, err, "export failed")
}
