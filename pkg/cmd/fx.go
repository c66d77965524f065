package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(bound, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(equal, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
