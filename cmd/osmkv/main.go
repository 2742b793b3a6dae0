// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command osmkv decodes OpenStreetMap PBF files into wide-column cells.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"m4o.io/osmkv/cmd/osmkv/cli"
	_ "m4o.io/osmkv/cmd/osmkv/dump"
	_ "m4o.io/osmkv/cmd/osmkv/extract"
	_ "m4o.io/osmkv/cmd/osmkv/info"
	_ "m4o.io/osmkv/cmd/osmkv/ingest"
	"m4o.io/osmkv/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.RootCmd.ExecuteContext(ctx)

	stop()
	logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}
