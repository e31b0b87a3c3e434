// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timelock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resetRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	registry = map[string]Module{}
	registryMu.Unlock()
}

func TestRegisterModule(t *testing.T) {
	resetRegistry(t)

	m := Module{
		ConfigKey:    "prod",
		ProgramID:    addr("timelock-program-under-test-0001"),
		FeeRecipient: addr("fee-recipient-account-0000000001"),
	}
	require.NoError(t, RegisterModule(m))

	got, ok := GetModule("prod")
	require.True(t, ok)
	require.Equal(t, m, got)
}

func TestRegisterModuleRejectsDuplicateConfigKey(t *testing.T) {
	resetRegistry(t)

	first := Module{ConfigKey: "prod", ProgramID: addr("program-a-0000000000000000000001"), FeeRecipient: addr("fee-recipient-account-0000000001")}
	second := Module{ConfigKey: "prod", ProgramID: addr("program-b-0000000000000000000002"), FeeRecipient: addr("fee-recipient-account-0000000001")}

	require.NoError(t, RegisterModule(first))
	require.Error(t, RegisterModule(second))
}

func TestRegisterModuleRejectsDuplicateProgramID(t *testing.T) {
	resetRegistry(t)

	shared := addr("program-shared-00000000000000001")
	first := Module{ConfigKey: "prod", ProgramID: shared, FeeRecipient: addr("fee-recipient-account-0000000001")}
	second := Module{ConfigKey: "staging", ProgramID: shared, FeeRecipient: addr("fee-recipient-account-0000000001")}

	require.NoError(t, RegisterModule(first))
	require.Error(t, RegisterModule(second))
}

func TestGetModuleNotFound(t *testing.T) {
	resetRegistry(t)

	_, ok := GetModule("missing")
	require.False(t, ok)
}

func TestRegisteredModulesSortedByConfigKey(t *testing.T) {
	resetRegistry(t)

	require.NoError(t, RegisterModule(Module{ConfigKey: "staging", ProgramID: addr("program-staging-0000000000001"), FeeRecipient: addr("fee-recipient-account-0000000001")}))
	require.NoError(t, RegisterModule(Module{ConfigKey: "prod", ProgramID: addr("program-prod-000000000000001"), FeeRecipient: addr("fee-recipient-account-0000000001")}))
	require.NoError(t, RegisterModule(Module{ConfigKey: "dev", ProgramID: addr("program-dev-0000000000000001"), FeeRecipient: addr("fee-recipient-account-0000000001")}))

	modules := RegisteredModules()
	require.Len(t, modules, 3)
	require.Equal(t, []string{"dev", "prod", "staging"}, []string{modules[0].ConfigKey, modules[1].ConfigKey, modules[2].ConfigKey})
}

func TestRegisteredModulesEmpty(t *testing.T) {
	resetRegistry(t)
	require.Empty(t, RegisteredModules())
}
