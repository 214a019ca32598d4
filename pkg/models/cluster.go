package models

import "encoding/xml"

// Cluster describes a single managed cluster as it appears on the wire.
// The same shape serializes to JSON and XML; the XML element is named
// "cluster" both standalone and inside a ClusterList.
// @Description A managed cluster and its identifying attributes
type Cluster struct {
	XMLName xml.Name `json:"-" xml:"cluster"`

	// Name is the unique, immutable identifier of the cluster.
	Name string `json:"name" xml:"name"`

	// DisplayName is a human readable name, defaulting to Name when unset.
	DisplayName string `json:"displayName,omitempty" xml:"displayName,omitempty"`

	// FullVersion is the version of the software stack the cluster runs.
	FullVersion string `json:"fullVersion,omitempty" xml:"fullVersion,omitempty"`

	// UUID is assigned by the server on creation and is read-only.
	UUID string `json:"uuid,omitempty" xml:"uuid,omitempty"`
}

// ClusterList is the collection envelope for clusters. The collection is
// always nested under a field named "items": in JSON as an array, in XML as
// an <items> wrapper holding repeated <cluster> elements under the root
// element <clusterList>.
// @Description A list of clusters
type ClusterList struct {
	XMLName xml.Name  `json:"-" xml:"clusterList"`
	Items   []Cluster `json:"items" xml:"items>cluster"`
}

// NewClusterList builds a ClusterList from the given clusters. A nil or empty
// input yields an envelope that serializes to {"items":[]}, never to null.
func NewClusterList(items ...Cluster) ClusterList {
	if items == nil {
		items = []Cluster{}
	}
	return ClusterList{Items: items}
}

// Values returns the held clusters in insertion order.
func (l ClusterList) Values() []Cluster {
	return l.Items
}

// MarshalXML emits the items wrapper even when the collection is empty.
func (l ClusterList) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return marshalItemsXML(e, "clusterList", len(l.Items), func(e *xml.Encoder, i int) error {
		return e.EncodeElement(l.Items[i], xml.StartElement{Name: xml.Name{Local: "cluster"}})
	})
}

// marshalItemsXML writes a collection envelope: the root element wrapping an
// items element that is present regardless of how many children follow.
// The struct tags still drive unmarshalling.
func marshalItemsXML(e *xml.Encoder, root string, n int, encodeItem func(*xml.Encoder, int) error) error {
	start := xml.StartElement{Name: xml.Name{Local: root}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	items := xml.StartElement{Name: xml.Name{Local: "items"}}
	if err := e.EncodeToken(items); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := encodeItem(e, i); err != nil {
			return err
		}
	}
	if err := e.EncodeToken(items.End()); err != nil {
		return err
	}

	return e.EncodeToken(start.End())
}
