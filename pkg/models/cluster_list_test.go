package models

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
)

func testClusters() []Cluster {
	return []Cluster{
		{Name: "prod-east", DisplayName: "Production East", FullVersion: "7.4.2", UUID: "0b5c0c4e"},
		{Name: "prod-west", DisplayName: "Production West", FullVersion: "7.4.2", UUID: "9f1d22aa"},
		{Name: "staging", FullVersion: "7.5.0"},
	}
}

func TestNewClusterList_ValuesRoundTrip(t *testing.T) {
	in := testClusters()
	list := NewClusterList(in...)

	got := list.Values()
	require.Len(t, got, len(in))
	for i := range in {
		require.Equal(t, in[i].Name, got[i].Name)
		require.Equal(t, in[i].UUID, got[i].UUID)
	}
}

func TestNewClusterList_NilIsEmpty(t *testing.T) {
	list := NewClusterList()
	require.NotNil(t, list.Items)
	require.Empty(t, list.Values())

	data, err := json.Marshal(list)
	require.NoError(t, err)
	require.JSONEq(t, `{"items":[]}`, string(data))
}

func TestClusterList_JSONRoundTrip(t *testing.T) {
	list := NewClusterList(testClusters()...)

	data, err := json.Marshal(list)
	require.NoError(t, err)

	var back ClusterList
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, list.Values(), back.Values())
}

func TestClusterList_JSONFieldIsItems(t *testing.T) {
	for _, list := range []ClusterList{
		NewClusterList(),
		NewClusterList(testClusters()...),
	} {
		data, err := json.Marshal(list)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Contains(t, raw, "items")
		require.Len(t, raw, 1)
	}
}

func TestClusterList_JSONEmptyDeserialization(t *testing.T) {
	var list ClusterList
	require.NoError(t, json.Unmarshal([]byte(`{"items":[]}`), &list))
	require.Empty(t, list.Values())
}

func TestClusterList_XMLRoundTrip(t *testing.T) {
	list := NewClusterList(testClusters()...)

	data, err := xml.Marshal(list)
	require.NoError(t, err)

	var back ClusterList
	require.NoError(t, xml.Unmarshal(data, &back))

	got := back.Values()
	require.Len(t, got, len(list.Values()))
	for i, want := range list.Values() {
		require.Equal(t, want.Name, got[i].Name)
		require.Equal(t, want.DisplayName, got[i].DisplayName)
		require.Equal(t, want.FullVersion, got[i].FullVersion)
		require.Equal(t, want.UUID, got[i].UUID)
	}
}

func TestClusterList_XMLElementNames(t *testing.T) {
	data, err := xml.Marshal(NewClusterList(Cluster{Name: "solo"}))
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, "<clusterList>")
	require.Contains(t, out, "<items>")
	require.Contains(t, out, "<cluster>")
	require.Contains(t, out, "<name>solo</name>")
}

func TestClusterList_XMLEmpty(t *testing.T) {
	data, err := xml.Marshal(NewClusterList())
	require.NoError(t, err)
	require.Contains(t, string(data), "<clusterList>")

	// The items wrapper is present even with zero elements.
	require.Contains(t, string(data), "<items></items>")
	require.NotContains(t, string(data), "<cluster>")

	var back ClusterList
	require.NoError(t, xml.Unmarshal(data, &back))
	require.Empty(t, back.Values())
}

func TestEnvelopeConvention_XMLEmptyWrapper(t *testing.T) {
	for name, data := range map[string]any{
		"roleConfigGroupList": NewRoleConfigGroupList(),
		"roleList":            NewRoleList(),
		"roleNameList":        NewRoleNameList(),
	} {
		out, err := xml.Marshal(data)
		require.NoError(t, err)
		require.Contains(t, string(out), "<"+name+">")
		require.Contains(t, string(out), "<items></items>")
	}
}

// The envelope convention is shared across all list types: same "items"
// field, per-type element names.
func TestEnvelopeConvention_OtherListTypes(t *testing.T) {
	groups := NewRoleConfigGroupList(RoleConfigGroup{Name: "server-base", RoleType: "SERVER", Base: true})
	data, err := json.Marshal(groups)
	require.NoError(t, err)
	require.Contains(t, string(data), `"items":[`)

	xmlData, err := xml.Marshal(groups)
	require.NoError(t, err)
	require.Contains(t, string(xmlData), "<roleConfigGroupList>")
	require.Contains(t, string(xmlData), "<items><roleConfigGroup>")

	names := NewRoleNameList("server-1", "server-2")
	data, err = json.Marshal(names)
	require.NoError(t, err)
	require.JSONEq(t, `{"items":["server-1","server-2"]}`, string(data))

	roles := NewRoleList()
	data, err = json.Marshal(roles)
	require.NoError(t, err)
	require.JSONEq(t, `{"items":[]}`, string(data))
}
