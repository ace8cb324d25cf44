package main

import (
	"context"

	"codstats-backend/cmd/codstats-cli/commands"
	"codstats-backend/lib/serviceutil"
	"codstats-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "codstats-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(serviceutil.SignalContext())
}
