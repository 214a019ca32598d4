package manager_test

import (
	"reflect"
	"testing"

	"github.com/spechtlabs/clusterman/pkg/manager"
	"github.com/stretchr/testify/require"
)

// Later API versions must offer every operation of their predecessors.
func TestVersionContractsAreAdditive(t *testing.T) {
	v12 := reflect.TypeOf((*manager.ResourceV12)(nil)).Elem()
	v14 := reflect.TypeOf((*manager.ResourceV14)(nil)).Elem()

	for i := 0; i < v12.NumMethod(); i++ {
		name := v12.Method(i).Name
		m, ok := v14.MethodByName(name)
		require.True(t, ok, "v14 is missing v12 operation %s", name)
		require.Equal(t, v12.Method(i).Type, m.Type, "v14 changed the signature of %s", name)
	}

	require.Greater(t, v14.NumMethod(), v12.NumMethod(), "v14 must add operations beyond v12")

	_, ok := v14.MethodByName("GetScmDbInfo")
	require.True(t, ok)
}
