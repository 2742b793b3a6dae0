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

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetBuildsDefault(t *testing.T) {
	Set(nil)

	assert.NotNil(t, Get())
	assert.Same(t, Get(), Get())
}

func TestSet(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	Get().Info("decoded", zap.Int("blocks", 3))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "decoded", logs.All()[0].Message)
	assert.Equal(t, int64(3), logs.All()[0].ContextMap()["blocks"])
}

func TestFileCore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osmkv.log")

	l := New(Options{File: path})
	l.Info("hello")
	_ = l.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}
