package models

import "encoding/xml"

// ConfigEntry is a single configuration property of a role config group.
type ConfigEntry struct {
	XMLName xml.Name `json:"-" xml:"property"`
	Name    string   `json:"name" xml:"name"`
	Value   string   `json:"value" xml:"value"`
}

// RoleConfigGroup is a named set of configuration shared by all roles of one
// type within a service. Every service has one base group per role type;
// additional groups can be created and roles moved between them.
// @Description A role config group within a service
type RoleConfigGroup struct {
	XMLName xml.Name `json:"-" xml:"roleConfigGroup"`

	// Name uniquely identifies the group within its service.
	Name string `json:"name" xml:"name"`

	// DisplayName is a human readable name for the group.
	DisplayName string `json:"displayName,omitempty" xml:"displayName,omitempty"`

	// RoleType is the type of role this group configures. Roles can only be
	// members of a group whose role type matches their own.
	RoleType string `json:"roleType" xml:"roleType"`

	// Base reports whether this is the service's default group for its role
	// type. Base groups cannot be deleted.
	Base bool `json:"base" xml:"base"`

	// Config holds the configuration properties of the group.
	Config []ConfigEntry `json:"config,omitempty" xml:"config>property,omitempty"`
}

// RoleConfigGroupList is the collection envelope for role config groups:
// root element <roleConfigGroupList>, items nested under "items".
// @Description A list of role config groups
type RoleConfigGroupList struct {
	XMLName xml.Name          `json:"-" xml:"roleConfigGroupList"`
	Items   []RoleConfigGroup `json:"items" xml:"items>roleConfigGroup"`
}

// NewRoleConfigGroupList builds a RoleConfigGroupList; nil input is
// normalized to an empty, non-nil collection.
func NewRoleConfigGroupList(items ...RoleConfigGroup) RoleConfigGroupList {
	if items == nil {
		items = []RoleConfigGroup{}
	}
	return RoleConfigGroupList{Items: items}
}

// Values returns the held groups in insertion order.
func (l RoleConfigGroupList) Values() []RoleConfigGroup {
	return l.Items
}

// MarshalXML emits the items wrapper even when the collection is empty.
func (l RoleConfigGroupList) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return marshalItemsXML(e, "roleConfigGroupList", len(l.Items), func(e *xml.Encoder, i int) error {
		return e.EncodeElement(l.Items[i], xml.StartElement{Name: xml.Name{Local: "roleConfigGroup"}})
	})
}

// Role is a single role instance of a service running on a cluster.
// @Description A role within a service
type Role struct {
	XMLName xml.Name `json:"-" xml:"role"`

	// Name uniquely identifies the role within its service.
	Name string `json:"name" xml:"name"`

	// Type is the role type, e.g. "SERVER" or "GATEWAY".
	Type string `json:"type" xml:"type"`

	// RoleConfigGroupName references the group the role is a member of.
	RoleConfigGroupName string `json:"roleConfigGroupRef,omitempty" xml:"roleConfigGroupRef,omitempty"`
}

// RoleList is the collection envelope for roles: root element <roleList>,
// items nested under "items".
// @Description A list of roles
type RoleList struct {
	XMLName xml.Name `json:"-" xml:"roleList"`
	Items   []Role   `json:"items" xml:"items>role"`
}

// NewRoleList builds a RoleList; nil input is normalized to an empty,
// non-nil collection.
func NewRoleList(items ...Role) RoleList {
	if items == nil {
		items = []Role{}
	}
	return RoleList{Items: items}
}

// Values returns the held roles in insertion order.
func (l RoleList) Values() []Role {
	return l.Items
}

// MarshalXML emits the items wrapper even when the collection is empty.
func (l RoleList) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return marshalItemsXML(e, "roleList", len(l.Items), func(e *xml.Encoder, i int) error {
		return e.EncodeElement(l.Items[i], xml.StartElement{Name: xml.Name{Local: "role"}})
	})
}

// RoleNameList carries bare role names, used as the request body when moving
// roles into a role config group.
// @Description A list of role names
type RoleNameList struct {
	XMLName xml.Name `json:"-" xml:"roleNameList"`
	Items   []string `json:"items" xml:"items>roleName"`
}

// NewRoleNameList builds a RoleNameList; nil input is normalized to an
// empty, non-nil collection.
func NewRoleNameList(items ...string) RoleNameList {
	if items == nil {
		items = []string{}
	}
	return RoleNameList{Items: items}
}

// Values returns the held role names in insertion order.
func (l RoleNameList) Values() []string {
	return l.Items
}

// MarshalXML emits the items wrapper even when the collection is empty.
func (l RoleNameList) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return marshalItemsXML(e, "roleNameList", len(l.Items), func(e *xml.Encoder, i int) error {
		return e.EncodeElement(l.Items[i], xml.StartElement{Name: xml.Name{Local: "roleName"}})
	})
}
